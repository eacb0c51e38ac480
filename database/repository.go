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

package database

import (
	"context"
	"time"

	"github.com/jerry-enebeli/nexabank/model"
)

// IDataSource defines the interface for data source operations, grouping related functionalities.
type IDataSource interface {
	account     // Interface for account-related operations
	transaction // Interface for transaction-related operations
}

// account defines methods for handling customer accounts.
type account interface {
	CreateAccount(ctx context.Context, account model.Account) (model.Account, error)         // Creates a new account; fails on any duplicate unique field
	GetAccountByID(ctx context.Context, id string) (*model.Account, error)                   // Retrieves an account by ID
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)             // Retrieves an account by email (login, OTP flows)
	UpdateProfile(ctx context.Context, account *model.Account) error                         // Updates name/email/phone only
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error                   // Replaces the password hash and clears any pending OTP
	UpdatePINHash(ctx context.Context, id, pinHash string) error                             // Replaces the transaction PIN hash
	SetOTP(ctx context.Context, id, otp string, expiresAt time.Time) error                   // Stores a password-reset OTP
	TouchLastActivity(ctx context.Context, id string, at time.Time) error                    // Records authenticated activity for idle-session expiry
}

// transaction defines methods for handling ledger transactions.
type transaction interface {
	RecordDebit(ctx context.Context, txn *model.Transaction) (*model.Transaction, error)                 // Atomically debits amount+fee and appends the transaction
	RecordCredit(ctx context.Context, txn *model.Transaction) (*model.Transaction, error)                // Atomically credits amount and appends the transaction
	GetTransaction(ctx context.Context, id, accountID string) (*model.Transaction, error)                // Retrieves an owned transaction by ID
	GetTransactionsByAccount(ctx context.Context, accountID string, limit int) ([]model.Transaction, error) // Retrieves recent transactions, newest first
	TransactionExistsByRef(ctx context.Context, reference string) (bool, error)                          // Checks if a transaction exists by reference
}
