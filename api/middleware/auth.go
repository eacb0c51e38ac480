/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jerry-enebeli/nexabank"
	"github.com/jerry-enebeli/nexabank/internal/apierror"
)

// AccountKey is the context key the session middleware stores the
// authenticated account under.
const AccountKey = "account"

// SessionAuthMiddleware authenticates requests with a Bearer token. It
// resolves the token to a live account, enforcing the idle timeout and
// refreshing activity, and stores the account on the context for handlers.
type SessionAuthMiddleware struct {
	service *nexabank.Nexabank
}

func NewSessionAuthMiddleware(service *nexabank.Nexabank) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{service: service}
}

func (m *SessionAuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Missing authorization header"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization header must be a Bearer token"})
			return
		}

		account, err := m.service.AuthorizeSession(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(apierror.MapErrorToHTTPStatus(err), gin.H{"success": false, "error": err.Error()})
			return
		}

		c.Set(AccountKey, account)
		c.Next()
	}
}
