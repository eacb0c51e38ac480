package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model2 "github.com/jerry-enebeli/nexabank/api/model"
	"github.com/jerry-enebeli/nexabank/model"
)

// GetBalance returns the current balance in naira.
func (a Api) GetBalance(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	// Re-read so the figure reflects any transaction committed since the
	// session middleware loaded the account.
	fresh, err := a.service.GetAccount(c.Request.Context(), account.AccountID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"account_id":     fresh.AccountID,
		"balance":        model.MinorToMajor(fresh.BalanceMinor),
		"linked_account": fresh.PrimaryLinkedAccount(),
	})
}

// GetTransactions returns the most recent transactions, newest first.
func (a Api) GetTransactions(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	transactions, err := a.service.GetTransactionHistory(c.Request.Context(), account.AccountID)
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]gin.H, 0, len(transactions))
	for i := range transactions {
		views = append(views, transactionView(&transactions[i]))
	}
	respondOK(c, http.StatusOK, gin.H{"transactions": views})
}

// UpdateProfile changes name, email, or phone. Fields left empty keep their
// current value.
func (a Api) UpdateProfile(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	var payload model2.UpdateProfile
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := payload.ValidateUpdateProfile(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	updated, err := a.service.UpdateProfile(c.Request.Context(), account.AccountID,
		payload.FirstName, payload.LastName, payload.Email, payload.Phone)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, accountView(updated))
}
