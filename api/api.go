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

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jerry-enebeli/nexabank"
	"github.com/jerry-enebeli/nexabank/api/middleware"
	"github.com/jerry-enebeli/nexabank/config"
	"github.com/jerry-enebeli/nexabank/internal/apierror"
	"github.com/jerry-enebeli/nexabank/model"
)

type Api struct {
	service *nexabank.Nexabank
	router  *gin.Engine
}

// Router wires every endpoint. Everything under the authenticated group
// carries a live session; auth endpoints are open.
func (a Api) Router() *gin.Engine {
	router := a.router

	auth := router.Group("/auth")
	auth.POST("/register", a.Register)
	auth.POST("/login", a.Login)
	auth.POST("/forgot-password", a.ForgotPassword)
	auth.PUT("/reset-password", a.ResetPassword)

	session := middleware.NewSessionAuthMiddleware(a.service)
	protected := router.Group("/", session.Authenticate())
	protected.GET("/auth/me", a.Me)
	protected.PUT("/auth/reset-pin", a.ResetPIN)

	protected.GET("/accounts/balance", a.GetBalance)
	protected.GET("/accounts/transactions", a.GetTransactions)
	protected.PUT("/accounts/profile", a.UpdateProfile)

	protected.POST("/transactions/transfer", a.Transfer)
	protected.GET("/transactions/:id/receipt", a.GetReceipt)

	protected.GET("/bills/options", a.BillOptions)
	protected.POST("/bills/airtime", a.BuyAirtime)
	protected.POST("/bills/pay", a.PayBill)

	return a.router
}

func NewAPI(service *nexabank.Nexabank) *Api {
	gin.SetMode(gin.ReleaseMode)
	conf, err := config.Fetch()
	if err != nil {
		return nil
	}
	r := gin.Default()
	r.Use(middleware.RateLimitMiddleware(conf))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, "server running...")
	})

	return &Api{service: service, router: r}
}

// respondError maps a service error onto the response envelope.
func respondError(c *gin.Context, err error) {
	c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"success": false, "error": err.Error()})
}

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// currentAccount retrieves the account the session middleware authenticated.
func currentAccount(c *gin.Context) (*model.Account, bool) {
	value, exists := c.Get(middleware.AccountKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Not authenticated"})
		return nil, false
	}
	account, ok := value.(*model.Account)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Invalid session state"})
		return nil, false
	}
	return account, true
}

func accountView(account *model.Account) gin.H {
	return gin.H{
		"account_id":      account.AccountID,
		"first_name":      account.FirstName,
		"last_name":       account.LastName,
		"email":           account.Email,
		"phone":           account.Phone,
		"linked_accounts": account.LinkedAccounts,
		"created_at":      account.CreatedAt,
	}
}

func transactionView(txn *model.Transaction) gin.H {
	view := gin.H{
		"id":          txn.TransactionID,
		"kind":        txn.Kind,
		"amount":      model.MinorToMajor(txn.AmountMinor),
		"fee":         model.MinorToMajor(txn.FeeMinor),
		"total":       model.MinorToMajor(txn.TotalDebitMinor()),
		"reference":   txn.Reference,
		"status":      txn.Status,
		"description": txn.Description,
		"created_at":  txn.CreatedAt,
	}
	if txn.Recipient != nil {
		view["recipient"] = txn.Recipient
	}
	if txn.BillDetails != nil {
		view["bill_details"] = txn.BillDetails
	}
	return view
}
