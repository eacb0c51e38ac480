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

package nexabank

import (
	"embed"

	"github.com/jerry-enebeli/nexabank/config"
	"github.com/jerry-enebeli/nexabank/database"
	redis_db "github.com/jerry-enebeli/nexabank/internal/redis-db"
	"github.com/redis/go-redis/v9"
)

//go:embed sql/*.sql
var SQLFiles embed.FS

// Nexabank is the core banking service. All money movement and account
// lifecycle operations go through it; HTTP handlers hold no business logic.
type Nexabank struct {
	redis      redis.UniversalClient
	datasource database.IDataSource
	sessions   *SessionManager
	resolver   RecipientResolver
	receipts   ReceiptRenderer
}

// NewNexabank initializes the service with the provided datasource. It
// fetches the configuration and connects the Redis client used for
// per-account locking.
func NewNexabank(db database.IDataSource) (*Nexabank, error) {
	configuration, err := config.Fetch()
	if err != nil {
		return nil, err
	}
	redisClient, err := redis_db.NewRedisClient(configuration.Redis.Dns)
	if err != nil {
		return nil, err
	}
	return &Nexabank{
		datasource: db,
		redis:      redisClient.Client(),
		sessions:   NewSessionManager(configuration),
		resolver:   nameResolver{},
		receipts:   TextReceipt{},
	}, nil
}

// Sessions exposes the session manager for transport-layer middleware.
func (n *Nexabank) Sessions() *SessionManager {
	return n.sessions
}

// SetRecipientResolver swaps the recipient lookup used on transfers. The
// default synthesizes names from the bank registry; a production deployment
// points this at a name-enquiry service.
func (n *Nexabank) SetRecipientResolver(resolver RecipientResolver) {
	n.resolver = resolver
}
