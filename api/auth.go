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

	model2 "github.com/jerry-enebeli/nexabank/api/model"
	"github.com/jerry-enebeli/nexabank/model"
)

// Register opens a new account. The response includes the generated account
// ID and the NexaBank account number the customer can receive money on.
func (a Api) Register(c *gin.Context) {
	var payload model2.Register
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := payload.ValidateRegister(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	account, err := a.service.CreateAccount(c.Request.Context(), model.Account{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		BVN:       payload.BVN,
	}, payload.Password, payload.PIN)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := a.service.Sessions().Issue(account.AccountID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, gin.H{
		"token":   token,
		"account": accountView(&account),
	})
}

// Login authenticates a customer and returns a session token.
func (a Api) Login(c *gin.Context) {
	var payload model2.Login
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := payload.ValidateLogin(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	account, token, err := a.service.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"token":   token,
		"account": accountView(account),
	})
}

// Me returns the authenticated account's profile.
func (a Api) Me(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}
	respondOK(c, http.StatusOK, accountView(account))
}

// ForgotPassword starts the OTP reset flow. The response does not reveal
// whether the email is registered.
func (a Api) ForgotPassword(c *gin.Context) {
	var payload model2.ForgotPassword
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := payload.ValidateForgotPassword(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := a.service.ForgotPassword(c.Request.Context(), payload.Email); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"message": "If the email is registered, a reset code has been sent"})
}

// ResetPassword completes the OTP reset flow with a new password.
func (a Api) ResetPassword(c *gin.Context) {
	var payload model2.ResetPassword
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := payload.ValidateResetPassword(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := a.service.ResetPassword(c.Request.Context(), payload.Email, payload.OTP, payload.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"message": "Password updated"})
}

// ResetPIN replaces the transaction PIN after re-confirming the password.
func (a Api) ResetPIN(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	var payload model2.ResetPIN
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := payload.ValidateResetPIN(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := a.service.ResetPIN(c.Request.Context(), account.AccountID, payload.Password, payload.NewPIN); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"message": "Transaction PIN updated"})
}
