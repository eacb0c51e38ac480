package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/jerry-enebeli/nexabank/internal/apierror"
	"github.com/jerry-enebeli/nexabank/model"
)

const accountColumns = `account_id, first_name, last_name, email, phone, bvn, password_hash, pin_hash, balance, linked_accounts, otp, otp_expires_at, last_activity, created_at`

// CreateAccount inserts a new account. Email, phone, and BVN carry unique
// constraints; a violation on any of them surfaces as a conflict so that no
// partial account is ever created.
func (d Datasource) CreateAccount(ctx context.Context, account model.Account) (model.Account, error) {
	linkedJSON, err := json.Marshal(account.LinkedAccounts)
	if err != nil {
		return model.Account{}, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to marshal linked accounts", err)
	}

	account.AccountID = model.GenerateUUIDWithSuffix("acc")
	account.CreatedAt = time.Now()
	account.LastActivity = account.CreatedAt

	_, err = d.Conn.ExecContext(ctx, `
		INSERT INTO accounts (account_id, first_name, last_name, email, phone, bvn, password_hash, pin_hash, balance, linked_accounts, last_activity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, account.AccountID, account.FirstName, account.LastName, account.Email, account.Phone, account.BVN,
		account.PasswordHash, account.PINHash, account.BalanceMinor, linkedJSON, account.LastActivity, account.CreatedAt)

	if err != nil {
		pqErr, ok := err.(*pq.Error)
		if ok && pqErr.Code == "23505" {
			return model.Account{}, apierror.NewAPIError(apierror.ErrConflict, "An account with this email, phone or BVN already exists", err)
		}
		return model.Account{}, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to create account", err)
	}

	return account, nil
}

func (d Datasource) GetAccountByID(ctx context.Context, id string) (*model.Account, error) {
	row := d.Conn.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s FROM accounts WHERE account_id = $1
	`, accountColumns), id)

	account, err := scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Account with ID '%s' not found", id), err)
		}
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to retrieve account", err)
	}
	return account, nil
}

func (d Datasource) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	row := d.Conn.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s FROM accounts WHERE email = $1
	`, accountColumns), email)

	account, err := scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apierror.NewAPIError(apierror.ErrNotFound, "No account found with that email", err)
		}
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to retrieve account", err)
	}
	return account, nil
}

// UpdateProfile updates the mutable profile fields. Balance, credentials, and
// linked accounts never move through this path.
func (d Datasource) UpdateProfile(ctx context.Context, account *model.Account) error {
	result, err := d.Conn.ExecContext(ctx, `
		UPDATE accounts SET first_name = $2, last_name = $3, email = $4, phone = $5 WHERE account_id = $1
	`, account.AccountID, account.FirstName, account.LastName, account.Email, account.Phone)
	if err != nil {
		pqErr, ok := err.(*pq.Error)
		if ok && pqErr.Code == "23505" {
			return apierror.NewAPIError(apierror.ErrConflict, "An account with this email or phone already exists", err)
		}
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to update profile", err)
	}
	return requireOneRow(result, account.AccountID)
}

func (d Datasource) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	result, err := d.Conn.ExecContext(ctx, `
		UPDATE accounts SET password_hash = $2, otp = NULL, otp_expires_at = NULL WHERE account_id = $1
	`, id, passwordHash)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to update password", err)
	}
	return requireOneRow(result, id)
}

func (d Datasource) UpdatePINHash(ctx context.Context, id, pinHash string) error {
	result, err := d.Conn.ExecContext(ctx, `
		UPDATE accounts SET pin_hash = $2 WHERE account_id = $1
	`, id, pinHash)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to update PIN", err)
	}
	return requireOneRow(result, id)
}

func (d Datasource) SetOTP(ctx context.Context, id, otp string, expiresAt time.Time) error {
	result, err := d.Conn.ExecContext(ctx, `
		UPDATE accounts SET otp = $2, otp_expires_at = $3 WHERE account_id = $1
	`, id, otp, expiresAt)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to store OTP", err)
	}
	return requireOneRow(result, id)
}

// TouchLastActivity records the time of an authenticated request. Reads of
// last_activity are advisory; a slightly stale value is acceptable, so this
// runs outside any ledger critical section.
func (d Datasource) TouchLastActivity(ctx context.Context, id string, at time.Time) error {
	result, err := d.Conn.ExecContext(ctx, `
		UPDATE accounts SET last_activity = $2 WHERE account_id = $1
	`, id, at)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to record session activity", err)
	}
	return requireOneRow(result, id)
}

func requireOneRow(result sql.Result, accountID string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to get rows affected", err)
	}
	if rows == 0 {
		return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Account with ID '%s' not found", accountID), nil)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAccount(row rowScanner) (*model.Account, error) {
	account := &model.Account{}
	var linkedJSON []byte
	var otp sql.NullString
	var otpExpiresAt, lastActivity sql.NullTime

	err := row.Scan(
		&account.AccountID, &account.FirstName, &account.LastName, &account.Email, &account.Phone, &account.BVN,
		&account.PasswordHash, &account.PINHash, &account.BalanceMinor, &linkedJSON,
		&otp, &otpExpiresAt, &lastActivity, &account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(linkedJSON, &account.LinkedAccounts); err != nil {
		return nil, err
	}
	if otp.Valid {
		account.OTP = otp.String
	}
	if otpExpiresAt.Valid {
		account.OTPExpiresAt = otpExpiresAt.Time
	}
	if lastActivity.Valid {
		account.LastActivity = lastActivity.Time
	}
	return account, nil
}
