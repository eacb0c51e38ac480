package model

import "time"

// LinkedAccount is a bank-style account attached to a customer at
// registration. The number is the customer's receivable identifier.
type LinkedAccount struct {
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	BankName      string `json:"bank_name"`
}

type Account struct {
	ID             int64           `json:"-"`
	AccountID      string          `json:"account_id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	BVN            string          `json:"-"`
	PasswordHash   string          `json:"-"`
	PINHash        string          `json:"-"`
	BalanceMinor   int64           `json:"-"`
	LinkedAccounts []LinkedAccount `json:"linked_accounts"`
	OTP            string          `json:"-"`
	OTPExpiresAt   time.Time       `json:"-"`
	LastActivity   time.Time       `json:"last_activity"`
	CreatedAt      time.Time       `json:"created_at"`
}

// DisplayName is the account-holder name stamped on linked accounts and
// receipts.
func (a *Account) DisplayName() string {
	return a.FirstName + " " + a.LastName
}

// PrimaryLinkedAccount returns the receivable account generated at
// registration. Accounts always carry at least one.
func (a *Account) PrimaryLinkedAccount() LinkedAccount {
	if len(a.LinkedAccounts) == 0 {
		return LinkedAccount{}
	}
	return a.LinkedAccounts[0]
}
