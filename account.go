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
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/jerry-enebeli/nexabank/config"
	"github.com/jerry-enebeli/nexabank/internal/apierror"
	"github.com/jerry-enebeli/nexabank/internal/notification"
	"github.com/jerry-enebeli/nexabank/internal/secure"
	"github.com/jerry-enebeli/nexabank/model"
)

// historyLimit caps the transaction history returned to clients at the most
// recent entries.
const historyLimit = 50

// generateAccountNumber produces a 10-digit NUBAN-style account number for a
// newly registered customer. Uniqueness is not enforced here; the number is a
// display identifier on the linked account, not a database key.
func generateAccountNumber() (string, error) {
	max := big.NewInt(10000000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%010d", n.Int64()), nil
}

// CreateAccount registers a new customer. The password and transaction PIN
// are hashed before anything touches the database, a NexaBank linked account
// is generated, and the opening balance arrives as a recorded welcome
// deposit so the ledger explains the balance from day one.
func (n *Nexabank) CreateAccount(ctx context.Context, account model.Account, password, pin string) (model.Account, error) {
	cnf, err := config.Fetch()
	if err != nil {
		return model.Account{}, err
	}

	passwordHash, err := secure.HashSecret(password)
	if err != nil {
		return model.Account{}, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to secure password", err)
	}
	pinHash, err := secure.HashSecret(pin)
	if err != nil {
		return model.Account{}, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to secure PIN", err)
	}

	accountNumber, err := generateAccountNumber()
	if err != nil {
		return model.Account{}, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to generate account number", err)
	}

	account.PasswordHash = passwordHash
	account.PINHash = pinHash
	account.BalanceMinor = 0
	account.LinkedAccounts = []model.LinkedAccount{{
		AccountNumber: accountNumber,
		AccountName:   account.DisplayName(),
		BankName:      "NexaBank",
	}}

	created, err := n.datasource.CreateAccount(ctx, account)
	if err != nil {
		return model.Account{}, err
	}

	opening := cnf.Ledger.OpeningBalanceNaira * model.KoboPerNaira
	if opening > 0 {
		welcome := &model.Transaction{
			AccountID:   created.AccountID,
			Kind:        model.KindDeposit,
			AmountMinor: opening,
			Reference:   model.NewWelcomeReference(),
			Status:      model.StatusCompleted,
			Description: "Welcome bonus",
		}
		if _, err := n.datasource.RecordCredit(ctx, welcome); err != nil {
			notification.NotifyError(err)
			return model.Account{}, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to credit opening balance", err)
		}
		created.BalanceMinor = opening
	}
	return created, nil
}

// Login authenticates by email and password and opens a session. A missing
// account and a wrong password produce the same error so the endpoint does
// not leak which emails are registered.
func (n *Nexabank) Login(ctx context.Context, email, password string) (*model.Account, string, error) {
	account, err := n.datasource.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, "", apierror.NewAPIError(apierror.ErrInvalidCredential, "Invalid email or password", nil)
	}
	if !secure.VerifySecret(password, account.PasswordHash) {
		return nil, "", apierror.NewAPIError(apierror.ErrInvalidCredential, "Invalid email or password", nil)
	}

	token, err := n.sessions.Issue(account.AccountID)
	if err != nil {
		return nil, "", err
	}
	now := time.Now()
	if err := n.datasource.TouchLastActivity(ctx, account.AccountID, now); err != nil {
		return nil, "", err
	}
	account.LastActivity = now
	return account, token, nil
}

// ForgotPassword issues a one-time reset code to the account's email. The
// response is identical whether or not the email is registered.
func (n *Nexabank) ForgotPassword(ctx context.Context, email string) error {
	account, err := n.datasource.GetAccountByEmail(ctx, email)
	if err != nil {
		if apiErr, ok := err.(apierror.APIError); ok && apiErr.Code == apierror.ErrNotFound {
			return nil
		}
		return err
	}

	otp, err := secure.GenerateOTP()
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to generate reset code", err)
	}
	expiresAt := time.Now().Add(n.sessions.otpTTL)
	if err := n.datasource.SetOTP(ctx, account.AccountID, otp, expiresAt); err != nil {
		return err
	}

	go func() {
		if err := notification.MailOTP(account.Email, otp, int(n.sessions.otpTTL.Minutes())); err != nil {
			notification.NotifyError(err)
		}
	}()
	return nil
}

// ResetPassword completes the forgot-password flow. The stored OTP is
// single-use: a successful reset clears it.
func (n *Nexabank) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	account, err := n.datasource.GetAccountByEmail(ctx, email)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInvalidCredential, "Invalid reset code", nil)
	}
	if account.OTP == "" || account.OTP != otp {
		return apierror.NewAPIError(apierror.ErrInvalidCredential, "Invalid reset code", nil)
	}
	if time.Now().After(account.OTPExpiresAt) {
		return apierror.NewAPIError(apierror.ErrInvalidCredential, "Reset code has expired", nil)
	}

	passwordHash, err := secure.HashSecret(newPassword)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to secure password", err)
	}
	return n.datasource.UpdatePasswordHash(ctx, account.AccountID, passwordHash)
}

// ResetPIN replaces the transaction PIN for a logged-in customer after
// re-confirming their password.
func (n *Nexabank) ResetPIN(ctx context.Context, accountID, password, newPIN string) error {
	account, err := n.datasource.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !secure.VerifySecret(password, account.PasswordHash) {
		return apierror.NewAPIError(apierror.ErrInvalidCredential, "Incorrect password", nil)
	}
	pinHash, err := secure.HashSecret(newPIN)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to secure PIN", err)
	}
	return n.datasource.UpdatePINHash(ctx, accountID, pinHash)
}

// UpdateProfile changes the mutable profile fields. Empty inputs preserve
// the current value, so clients send only what changed.
func (n *Nexabank) UpdateProfile(ctx context.Context, accountID, firstName, lastName, email, phone string) (*model.Account, error) {
	account, err := n.datasource.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if firstName != "" {
		account.FirstName = firstName
	}
	if lastName != "" {
		account.LastName = lastName
	}
	if email != "" {
		account.Email = email
	}
	if phone != "" {
		account.Phone = phone
	}
	if err := n.datasource.UpdateProfile(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccount retrieves the account record, balance included.
func (n *Nexabank) GetAccount(ctx context.Context, accountID string) (*model.Account, error) {
	return n.datasource.GetAccountByID(ctx, accountID)
}

// GetTransactionHistory returns the most recent transactions, newest first.
func (n *Nexabank) GetTransactionHistory(ctx context.Context, accountID string) ([]model.Transaction, error) {
	return n.datasource.GetTransactionsByAccount(ctx, accountID, historyLimit)
}

// GetTransaction retrieves one of the account's own transactions.
func (n *Nexabank) GetTransaction(ctx context.Context, transactionID, accountID string) (*model.Transaction, error) {
	return n.datasource.GetTransaction(ctx, transactionID, accountID)
}
