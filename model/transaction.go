package model

import (
	"encoding/json"
	"time"
)

const (
	KindTransfer   = "transfer"
	KindDeposit    = "deposit"
	KindWithdrawal = "withdrawal"
	KindAirtime    = "airtime"
	KindBill       = "bill"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Recipient is the snapshot of the receiving side captured on transfer
// transactions. The receiving account lives at another bank and is never a
// mutable record in this store.
type Recipient struct {
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	BankCode      string `json:"bank_code"`
	BankName      string `json:"bank_name"`
}

// BillDetails carries the provider-specific fields of airtime and bill
// transactions.
type BillDetails struct {
	Kind        string `json:"kind"`
	Provider    string `json:"provider"`
	Phone       string `json:"phone,omitempty"`
	MeterNumber string `json:"meter_number,omitempty"`
	Plan        string `json:"plan,omitempty"`
}

// Transaction is one committed ledger entry. Rows are append-only: they are
// written exactly once, in the same database transaction as the balance
// movement they describe, and never mutated afterwards.
type Transaction struct {
	ID            int64        `json:"-"`
	TransactionID string       `json:"id"`
	AccountID     string       `json:"account_id"`
	Kind          string       `json:"kind"`
	AmountMinor   int64        `json:"amount"`
	FeeMinor      int64        `json:"fee"`
	Reference     string       `json:"reference"`
	Status        string       `json:"status"`
	Description   string       `json:"description"`
	Recipient     *Recipient   `json:"recipient,omitempty"`
	BillDetails   *BillDetails `json:"bill_details,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

func (transaction *Transaction) ToJSON() ([]byte, error) {
	return json.Marshal(transaction)
}

// TotalDebitMinor is the amount the owning account was debited for this
// transaction.
func (transaction *Transaction) TotalDebitMinor() int64 {
	return transaction.AmountMinor + transaction.FeeMinor
}
