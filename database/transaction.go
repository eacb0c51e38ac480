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

const transactionColumns = `transaction_id, account_id, kind, amount, fee, reference, status, description, recipient, bill_details, created_at`

// RecordDebit performs the Debiting+Recording unit for one transaction: the
// balance decrement and the transaction insert commit together or not at
// all. The sufficiency check is baked into the UPDATE itself
// (balance >= amount+fee), so two concurrent debits against a stale read can
// never jointly overdraw the account.
func (d Datasource) RecordDebit(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	debit := txn.TotalDebitMinor()
	if debit <= 0 {
		return nil, apierror.NewAPIError(apierror.ErrInvalidInput, "Debit amount must be positive", nil)
	}

	tx, err := d.Conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to begin transaction", err)
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE accounts SET balance = balance - $2 WHERE account_id = $1 AND balance >= $2
	`, txn.AccountID, debit)
	if err != nil {
		_ = tx.Rollback()
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to debit account", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to get rows affected", err)
	}
	if rows == 0 {
		_ = tx.Rollback()
		return nil, d.classifyFailedDebit(ctx, txn.AccountID)
	}

	if err := insertTransaction(ctx, tx, txn); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to commit transaction", err)
	}
	return txn, nil
}

// RecordCredit is the deposit-side counterpart of RecordDebit: balance
// increment and transaction insert in one unit. Used for the account opening
// bonus.
func (d Datasource) RecordCredit(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	if txn.AmountMinor <= 0 {
		return nil, apierror.NewAPIError(apierror.ErrInvalidInput, "Credit amount must be positive", nil)
	}

	tx, err := d.Conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to begin transaction", err)
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE accounts SET balance = balance + $2 WHERE account_id = $1
	`, txn.AccountID, txn.AmountMinor)
	if err != nil {
		_ = tx.Rollback()
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to credit account", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to get rows affected", err)
	}
	if rows == 0 {
		_ = tx.Rollback()
		return nil, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Account with ID '%s' not found", txn.AccountID), nil)
	}

	if err := insertTransaction(ctx, tx, txn); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to commit transaction", err)
	}
	return txn, nil
}

// classifyFailedDebit distinguishes a missing account from an insufficient
// balance after a conditional debit matched no rows.
func (d Datasource) classifyFailedDebit(ctx context.Context, accountID string) error {
	var exists bool
	err := d.Conn.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM accounts WHERE account_id = $1)
	`, accountID).Scan(&exists)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to check account", err)
	}
	if !exists {
		return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Account with ID '%s' not found", accountID), nil)
	}
	return apierror.NewAPIError(apierror.ErrInsufficientFunds, "Insufficient balance", nil)
}

func insertTransaction(ctx context.Context, tx *sql.Tx, txn *model.Transaction) error {
	if txn.TransactionID == "" {
		txn.TransactionID = model.GenerateUUIDWithSuffix("txn")
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = time.Now()
	}

	var recipientJSON, billDetailsJSON []byte
	var err error
	if txn.Recipient != nil {
		recipientJSON, err = json.Marshal(txn.Recipient)
		if err != nil {
			return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to marshal recipient", err)
		}
	}
	if txn.BillDetails != nil {
		billDetailsJSON, err = json.Marshal(txn.BillDetails)
		if err != nil {
			return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to marshal bill details", err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO transactions (transaction_id, account_id, kind, amount, fee, reference, status, description, recipient, bill_details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, txn.TransactionID, txn.AccountID, txn.Kind, txn.AmountMinor, txn.FeeMinor, txn.Reference,
		txn.Status, txn.Description, nullableJSON(recipientJSON), nullableJSON(billDetailsJSON), txn.CreatedAt)
	if err != nil {
		pqErr, ok := err.(*pq.Error)
		if ok && pqErr.Code == "23505" {
			return apierror.NewAPIError(apierror.ErrConflict, fmt.Sprintf("Reference '%s' has already been used", txn.Reference), err)
		}
		return apierror.NewAPIError(apierror.ErrInternalServer, "Failed to record transaction", err)
	}
	return nil
}

func nullableJSON(b []byte) interface{} {
	if len(b) == 0 {
		return nil
	}
	return b
}

// GetTransaction retrieves a transaction scoped to its owner: asking for
// another account's transaction is indistinguishable from it not existing.
func (d Datasource) GetTransaction(ctx context.Context, id, accountID string) (*model.Transaction, error) {
	row := d.Conn.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s FROM transactions WHERE transaction_id = $1 AND account_id = $2
	`, transactionColumns), id, accountID)

	txn, err := scanTransaction(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("Transaction with ID '%s' not found", id), err)
		}
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to retrieve transaction", err)
	}
	return txn, nil
}

func (d Datasource) GetTransactionsByAccount(ctx context.Context, accountID string, limit int) ([]model.Transaction, error) {
	rows, err := d.Conn.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s FROM transactions WHERE account_id = $1 ORDER BY created_at DESC LIMIT $2
	`, transactionColumns), accountID, limit)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to retrieve transactions", err)
	}
	defer rows.Close()

	var transactions []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to scan transaction", err)
		}
		transactions = append(transactions, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to iterate transactions", err)
	}
	return transactions, nil
}

func (d Datasource) TransactionExistsByRef(ctx context.Context, reference string) (bool, error) {
	var exists bool
	err := d.Conn.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM transactions WHERE reference = $1)
	`, reference).Scan(&exists)
	if err != nil {
		return false, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to check reference", err)
	}
	return exists, nil
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	txn := &model.Transaction{}
	var recipientJSON, billDetailsJSON []byte
	var description sql.NullString

	err := row.Scan(
		&txn.TransactionID, &txn.AccountID, &txn.Kind, &txn.AmountMinor, &txn.FeeMinor,
		&txn.Reference, &txn.Status, &description, &recipientJSON, &billDetailsJSON, &txn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		txn.Description = description.String
	}
	if len(recipientJSON) > 0 {
		txn.Recipient = &model.Recipient{}
		if err := json.Unmarshal(recipientJSON, txn.Recipient); err != nil {
			return nil, err
		}
	}
	if len(billDetailsJSON) > 0 {
		txn.BillDetails = &model.BillDetails{}
		if err := json.Unmarshal(billDetailsJSON, txn.BillDetails); err != nil {
			return nil, err
		}
	}
	return txn, nil
}
