package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jerry-enebeli/nexabank"
	model2 "github.com/jerry-enebeli/nexabank/api/model"
	"github.com/jerry-enebeli/nexabank/catalog"
	"github.com/jerry-enebeli/nexabank/model"
)

// BillOptions lists the banks, networks, providers, and data plans payments
// can be made against.
func (a Api) BillOptions(c *gin.Context) {
	respondOK(c, http.StatusOK, catalog.Options())
}

// BuyAirtime purchases airtime for a phone number.
func (a Api) BuyAirtime(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	var payload model2.BuyAirtime
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := payload.ValidateBuyAirtime(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	txn, err := a.service.BuyAirtime(c.Request.Context(), account.AccountID, nexabank.AirtimeRequest{
		TelcoID:     payload.Provider,
		Phone:       payload.Phone,
		AmountMinor: model.MajorToMinor(payload.Amount),
		PIN:         payload.PIN,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, transactionView(txn))
}

// PayBill settles an electricity, cable, or data bill.
func (a Api) PayBill(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	var payload model2.PayBill
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := payload.ValidatePayBill(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	txn, err := a.service.PayBill(c.Request.Context(), account.AccountID, nexabank.BillRequest{
		BillKind:    payload.BillType,
		ProviderID:  payload.Provider,
		PlanID:      payload.Plan,
		MeterNumber: payload.MeterNumber,
		Phone:       payload.Phone,
		AmountMinor: model.MajorToMinor(payload.Amount),
		PIN:         payload.PIN,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, transactionView(txn))
}
