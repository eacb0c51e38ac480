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
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jerry-enebeli/nexabank/internal/apierror"
	"github.com/jerry-enebeli/nexabank/model"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func newTestDebit() *model.Transaction {
	return &model.Transaction{
		AccountID:   "acc_123",
		Kind:        model.KindTransfer,
		AmountMinor: 500000,
		FeeMinor:    50,
		Reference:   model.NewReference(),
		Status:      model.StatusCompleted,
		Description: "Transfer to Ada Obi",
		Recipient: &model.Recipient{
			AccountNumber: "0123456789",
			AccountName:   "Ada Obi",
			BankCode:      "044",
			BankName:      "Access Bank",
		},
	}
}

func TestRecordDebit_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}
	txn := newTestDebit()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE accounts SET balance = balance - \\$2 WHERE account_id = \\$1 AND balance >= \\$2").
		WithArgs(txn.AccountID, txn.TotalDebitMinor()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(sqlmock.AnyArg(), txn.AccountID, txn.Kind, txn.AmountMinor, txn.FeeMinor, txn.Reference,
			txn.Status, txn.Description, sqlmock.AnyArg(), nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	recorded, err := ds.RecordDebit(context.Background(), txn)
	assert.NoError(t, err)
	assert.Contains(t, recorded.TransactionID, "txn_")
	assert.WithinDuration(t, time.Now(), recorded.CreatedAt, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordDebit_InsufficientBalance(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}
	txn := newTestDebit()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE accounts SET balance = balance - \\$2 WHERE account_id = \\$1 AND balance >= \\$2").
		WithArgs(txn.AccountID, txn.TotalDebitMinor()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(txn.AccountID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, err = ds.RecordDebit(context.Background(), txn)
	assert.Error(t, err)
	apiErr, ok := err.(apierror.APIError)
	assert.True(t, ok)
	assert.Equal(t, apierror.ErrInsufficientFunds, apiErr.Code)
	assert.Equal(t, "Insufficient balance", apiErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordDebit_AccountNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}
	txn := newTestDebit()
	txn.AccountID = "acc_missing"

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE accounts SET balance = balance - \\$2 WHERE account_id = \\$1 AND balance >= \\$2").
		WithArgs(txn.AccountID, txn.TotalDebitMinor()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(txn.AccountID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	_, err = ds.RecordDebit(context.Background(), txn)
	assert.Error(t, err)
	apiErr, ok := err.(apierror.APIError)
	assert.True(t, ok)
	assert.Equal(t, apierror.ErrNotFound, apiErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordDebit_DuplicateReference(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}
	txn := newTestDebit()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE accounts SET balance = balance - \\$2 WHERE account_id = \\$1 AND balance >= \\$2").
		WithArgs(txn.AccountID, txn.TotalDebitMinor()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO transactions").
		WillReturnError(&pq.Error{Code: "23505", Message: "unique_violation"})
	mock.ExpectRollback()

	_, err = ds.RecordDebit(context.Background(), txn)
	assert.Error(t, err)
	apiErr, ok := err.(apierror.APIError)
	assert.True(t, ok)
	assert.Equal(t, apierror.ErrConflict, apiErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordDebit_RejectsNonPositiveAmount(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}
	txn := newTestDebit()
	txn.AmountMinor = 0
	txn.FeeMinor = 0

	_, err = ds.RecordDebit(context.Background(), txn)
	assert.Error(t, err)
	apiErr, ok := err.(apierror.APIError)
	assert.True(t, ok)
	assert.Equal(t, apierror.ErrInvalidInput, apiErr.Code)
}

func TestRecordCredit_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}
	txn := &model.Transaction{
		AccountID:   "acc_123",
		Kind:        model.KindDeposit,
		AmountMinor: 20000000,
		Reference:   model.NewWelcomeReference(),
		Status:      model.StatusCompleted,
		Description: "Welcome bonus",
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE accounts SET balance = balance \\+ \\$2 WHERE account_id = \\$1").
		WithArgs(txn.AccountID, txn.AmountMinor).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(sqlmock.AnyArg(), txn.AccountID, txn.Kind, txn.AmountMinor, int64(0), txn.Reference,
			txn.Status, txn.Description, nil, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	recorded, err := ds.RecordCredit(context.Background(), txn)
	assert.NoError(t, err)
	assert.Contains(t, recorded.TransactionID, "txn_")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransaction_ScopedToOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	mock.ExpectQuery("SELECT .* FROM transactions WHERE transaction_id = \\$1 AND account_id = \\$2").
		WithArgs("txn_123", "acc_other").
		WillReturnRows(sqlmock.NewRows([]string{"transaction_id"}))

	_, err = ds.GetTransaction(context.Background(), "txn_123", "acc_other")
	assert.Error(t, err)
	apiErr, ok := err.(apierror.APIError)
	assert.True(t, ok)
	assert.Equal(t, apierror.ErrNotFound, apiErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransactionsByAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}
	recipientJSON, _ := json.Marshal(model.Recipient{AccountNumber: "0123456789", AccountName: "Ada Obi", BankCode: "044", BankName: "Access Bank"})

	rows := sqlmock.NewRows([]string{
		"transaction_id", "account_id", "kind", "amount", "fee", "reference", "status", "description", "recipient", "bill_details", "created_at",
	}).
		AddRow("txn_2", "acc_123", model.KindTransfer, int64(500000), int64(50), "NEXA-1700000000001-0002", model.StatusCompleted, "Transfer to Ada Obi", recipientJSON, nil, time.Now()).
		AddRow("txn_1", "acc_123", model.KindDeposit, int64(20000000), int64(0), "WELCOME-1700000000000-0001", model.StatusCompleted, "Welcome bonus", nil, nil, time.Now().Add(-time.Hour))

	mock.ExpectQuery("SELECT .* FROM transactions WHERE account_id = \\$1 ORDER BY created_at DESC LIMIT \\$2").
		WithArgs("acc_123", 50).
		WillReturnRows(rows)

	transactions, err := ds.GetTransactionsByAccount(context.Background(), "acc_123", 50)
	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, "txn_2", transactions[0].TransactionID)
	assert.NotNil(t, transactions[0].Recipient)
	assert.Equal(t, "Access Bank", transactions[0].Recipient.BankName)
	assert.Nil(t, transactions[1].Recipient)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionExistsByRef(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ds := Datasource{Conn: db}

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("NEXA-1700000000001-0002").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := ds.TransactionExistsByRef(context.Background(), "NEXA-1700000000001-0002")
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
