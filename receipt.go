package nexabank

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	"github.com/jerry-enebeli/nexabank/model"
)

// ReceiptRenderer turns a committed transaction into a downloadable
// receipt document.
type ReceiptRenderer interface {
	Render(account *model.Account, txn *model.Transaction) ([]byte, error)
	ContentType() string
}

// TextReceipt renders plain-text receipts.
type TextReceipt struct{}

func (TextReceipt) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (TextReceipt) Render(account *model.Account, txn *model.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	line := func(label, value string) {
		fmt.Fprintf(&buf, "%-16s %s\n", label+":", value)
	}

	buf.WriteString("NexaBank Transaction Receipt\n")
	buf.WriteString("----------------------------\n")
	line("Reference", txn.Reference)
	line("Date", txn.CreatedAt.Format("02 Jan 2006 15:04:05"))
	line("Type", txn.Kind)
	line("Status", txn.Status)
	line("Amount", fmt.Sprintf("NGN %.2f", model.MinorToMajor(txn.AmountMinor)))
	if txn.FeeMinor > 0 {
		line("Fee", fmt.Sprintf("NGN %.2f", model.MinorToMajor(txn.FeeMinor)))
		line("Total", fmt.Sprintf("NGN %.2f", model.MinorToMajor(txn.TotalDebitMinor())))
	}
	line("Sender", account.DisplayName())

	if txn.Recipient != nil {
		line("Beneficiary", txn.Recipient.AccountName)
		line("Bank", txn.Recipient.BankName)
		line("Account No", txn.Recipient.AccountNumber)
	}
	if txn.BillDetails != nil {
		line("Service", txn.BillDetails.Provider)
		if txn.BillDetails.Phone != "" {
			line("Phone", txn.BillDetails.Phone)
		}
		if txn.BillDetails.MeterNumber != "" {
			line("Meter/Card", txn.BillDetails.MeterNumber)
		}
		if txn.BillDetails.Plan != "" {
			line("Plan", txn.BillDetails.Plan)
		}
	}
	if txn.Description != "" {
		line("Narration", txn.Description)
	}
	return buf.Bytes(), nil
}

// RenderReceipt renders the receipt for a transaction already in hand and
// returns it base64 encoded for embedding in JSON responses.
func (n *Nexabank) RenderReceipt(account *model.Account, txn *model.Transaction) (string, error) {
	body, err := n.receipts.Render(account, txn)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(body), nil
}

// GetReceipt renders the receipt for one of the account's transactions.
func (n *Nexabank) GetReceipt(ctx context.Context, transactionID, accountID string) ([]byte, string, error) {
	account, err := n.datasource.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, "", err
	}
	txn, err := n.datasource.GetTransaction(ctx, transactionID, accountID)
	if err != nil {
		return nil, "", err
	}
	body, err := n.receipts.Render(account, txn)
	if err != nil {
		return nil, "", err
	}
	return body, n.receipts.ContentType(), nil
}
