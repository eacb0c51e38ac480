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
	model2 "github.com/jerry-enebeli/nexabank/api/model"
	"github.com/jerry-enebeli/nexabank/model"
)

// Transfer debits the customer's account and records an outward bank
// transfer.
func (a Api) Transfer(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	var payload model2.Transfer
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := payload.ValidateTransfer(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	txn, err := a.service.Transfer(c.Request.Context(), account.AccountID, nexabank.TransferRequest{
		AccountNumber: payload.AccountNumber,
		BankCode:      payload.BankCode,
		AmountMinor:   model.MajorToMinor(payload.Amount),
		PIN:           payload.PIN,
		Narration:     payload.Narration,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	receipt, err := a.service.RenderReceipt(account, txn)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"transaction": transactionView(txn),
		"receipt":     receipt,
	})
}

// GetReceipt renders a downloadable receipt for one of the account's
// transactions.
func (a Api) GetReceipt(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	id, passed := c.Params.Get("id")
	if !passed {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "transaction id is required. pass id in the route /:id"})
		return
	}

	body, contentType, err := a.service.GetReceipt(c.Request.Context(), id, account.AccountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, contentType, body)
}
