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
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jerry-enebeli/nexabank/catalog"
	"github.com/jerry-enebeli/nexabank/config"
	"github.com/jerry-enebeli/nexabank/internal/apierror"
	redlock "github.com/jerry-enebeli/nexabank/internal/lock"
	"github.com/jerry-enebeli/nexabank/internal/secure"
	"github.com/jerry-enebeli/nexabank/model"
)

const (
	accountLockTTL  = 30 * time.Second
	accountLockWait = 5 * time.Second
)

// RecipientResolver resolves a destination bank account to its holder before
// a transfer commits. Production deployments back this with a name-enquiry
// service.
type RecipientResolver interface {
	Resolve(ctx context.Context, bankCode, accountNumber string) (*model.Recipient, error)
}

// nameResolver is the built-in resolver. It validates the bank code against
// the registry and synthesizes a holder name from the account number, which
// is enough for environments without a name-enquiry integration.
type nameResolver struct{}

func (nameResolver) Resolve(_ context.Context, bankCode, accountNumber string) (*model.Recipient, error) {
	bank, ok := catalog.Bank(bankCode)
	if !ok {
		return nil, apierror.NewAPIError(apierror.ErrInvalidRecipient, fmt.Sprintf("Unknown bank code '%s'", bankCode), nil)
	}
	if !isDigits(accountNumber) || len(accountNumber) != 10 {
		return nil, apierror.NewAPIError(apierror.ErrInvalidRecipient, "Account number must be 10 digits", nil)
	}
	return &model.Recipient{
		AccountNumber: accountNumber,
		AccountName:   fmt.Sprintf("%s Customer %s", bank.Name, accountNumber[6:]),
		BankCode:      bank.ID,
		BankName:      bank.Name,
	}, nil
}

type TransferRequest struct {
	AccountNumber string
	BankCode      string
	AmountMinor   int64
	PIN           string
	Narration     string
}

type AirtimeRequest struct {
	TelcoID     string
	Phone       string
	AmountMinor int64
	PIN         string
}

type BillRequest struct {
	BillKind    string
	ProviderID  string
	PlanID      string
	MeterNumber string
	Phone       string
	AmountMinor int64
	PIN         string
}

// Transfer moves money from the customer's account to an external bank
// account. The fee is added on top of the amount; the conditional debit in
// the datasource guarantees amount+fee never overdraws the balance, and the
// per-account lock serializes concurrent transfers from the same account.
func (n *Nexabank) Transfer(ctx context.Context, accountID string, req TransferRequest) (*model.Transaction, error) {
	cnf, err := config.Fetch()
	if err != nil {
		return nil, err
	}
	account, err := n.verifyPIN(ctx, accountID, req.PIN)
	if err != nil {
		return nil, err
	}
	if req.AmountMinor <= 0 {
		return nil, apierror.NewAPIError(apierror.ErrInvalidInput, "Transfer amount must be greater than zero", nil)
	}

	recipient, err := n.resolver.Resolve(ctx, req.BankCode, req.AccountNumber)
	if err != nil {
		return nil, err
	}
	if recipient.AccountNumber == account.PrimaryLinkedAccount().AccountNumber {
		return nil, apierror.NewAPIError(apierror.ErrInvalidRecipient, "Cannot transfer to your own account", nil)
	}

	description := req.Narration
	if description == "" {
		description = fmt.Sprintf("Transfer to %s", recipient.AccountName)
	}
	txn := &model.Transaction{
		AccountID:   account.AccountID,
		Kind:        model.KindTransfer,
		AmountMinor: req.AmountMinor,
		FeeMinor:    cnf.Ledger.TransferFeeKobo,
		Reference:   model.NewReference(),
		Status:      model.StatusCompleted,
		Description: description,
		Recipient:   recipient,
	}
	return n.debitUnderLock(ctx, account.AccountID, txn)
}

// BuyAirtime purchases airtime for a phone number. No fee applies; the
// amount must clear the configured floor.
func (n *Nexabank) BuyAirtime(ctx context.Context, accountID string, req AirtimeRequest) (*model.Transaction, error) {
	cnf, err := config.Fetch()
	if err != nil {
		return nil, err
	}
	account, err := n.verifyPIN(ctx, accountID, req.PIN)
	if err != nil {
		return nil, err
	}

	telco, ok := catalog.Telco(req.TelcoID)
	if !ok {
		return nil, apierror.NewAPIError(apierror.ErrInvalidProvider, fmt.Sprintf("Unknown network provider '%s'", req.TelcoID), nil)
	}
	if !isDigits(req.Phone) || len(req.Phone) != 11 {
		return nil, apierror.NewAPIError(apierror.ErrInvalidPhoneNumber, "Phone number must be 11 digits", nil)
	}
	minimum := cnf.Ledger.AirtimeMinimumNaira * model.KoboPerNaira
	if req.AmountMinor < minimum {
		return nil, apierror.NewAPIError(apierror.ErrBelowMinimum,
			fmt.Sprintf("Minimum airtime purchase is NGN %d", cnf.Ledger.AirtimeMinimumNaira), nil)
	}

	txn := &model.Transaction{
		AccountID:   account.AccountID,
		Kind:        model.KindAirtime,
		AmountMinor: req.AmountMinor,
		Reference:   model.NewReference(),
		Status:      model.StatusCompleted,
		Description: fmt.Sprintf("%s airtime for %s", telco.Name, req.Phone),
		BillDetails: &model.BillDetails{
			Kind:     catalog.BillKindAirtime,
			Provider: telco.ID,
			Phone:    req.Phone,
		},
	}
	return n.debitUnderLock(ctx, account.AccountID, txn)
}

// PayBill settles an electricity, cable, or data bill. Data bundles are
// priced by their plan; other kinds take the requested amount, subject to
// the bill floor.
func (n *Nexabank) PayBill(ctx context.Context, accountID string, req BillRequest) (*model.Transaction, error) {
	cnf, err := config.Fetch()
	if err != nil {
		return nil, err
	}
	account, err := n.verifyPIN(ctx, accountID, req.PIN)
	if err != nil {
		return nil, err
	}

	if _, ok := catalog.BillKind(req.BillKind); !ok {
		return nil, apierror.NewAPIError(apierror.ErrInvalidInput, fmt.Sprintf("Unknown bill type '%s'", req.BillKind), nil)
	}
	provider, ok := catalog.ProviderForBillKind(req.BillKind, req.ProviderID)
	if !ok {
		return nil, apierror.NewAPIError(apierror.ErrInvalidProvider,
			fmt.Sprintf("Unknown %s provider '%s'", req.BillKind, req.ProviderID), nil)
	}

	details := &model.BillDetails{Kind: req.BillKind, Provider: provider.ID}
	amount := req.AmountMinor
	var description string

	switch req.BillKind {
	case catalog.BillKindData:
		plan, ok := catalog.Plan(req.PlanID)
		if !ok || !strings.HasPrefix(plan.ID, provider.ID+"-") {
			return nil, apierror.NewAPIError(apierror.ErrInvalidPlan, fmt.Sprintf("Unknown data plan '%s'", req.PlanID), nil)
		}
		if !isDigits(req.Phone) || len(req.Phone) != 11 {
			return nil, apierror.NewAPIError(apierror.ErrInvalidPhoneNumber, "Phone number must be 11 digits", nil)
		}
		amount = plan.PriceKobo
		details.Plan = plan.ID
		details.Phone = req.Phone
		description = fmt.Sprintf("%s %s for %s", provider.Name, plan.Name, req.Phone)
	case catalog.BillKindElectricity:
		if req.MeterNumber == "" {
			return nil, apierror.NewAPIError(apierror.ErrInvalidInput, "Meter number is required", nil)
		}
		if err := checkBillFloor(amount, cnf); err != nil {
			return nil, err
		}
		details.MeterNumber = req.MeterNumber
		description = fmt.Sprintf("%s electricity for meter %s", provider.Name, req.MeterNumber)
	case catalog.BillKindCable:
		if req.MeterNumber == "" {
			return nil, apierror.NewAPIError(apierror.ErrInvalidInput, "Smartcard number is required", nil)
		}
		if err := checkBillFloor(amount, cnf); err != nil {
			return nil, err
		}
		details.MeterNumber = req.MeterNumber
		description = fmt.Sprintf("%s subscription for card %s", provider.Name, req.MeterNumber)
	default:
		return nil, apierror.NewAPIError(apierror.ErrInvalidInput, fmt.Sprintf("Unknown bill type '%s'", req.BillKind), nil)
	}

	txn := &model.Transaction{
		AccountID:   account.AccountID,
		Kind:        model.KindBill,
		AmountMinor: amount,
		Reference:   model.NewReference(),
		Status:      model.StatusCompleted,
		Description: description,
		BillDetails: details,
	}
	return n.debitUnderLock(ctx, account.AccountID, txn)
}

func checkBillFloor(amountMinor int64, cnf *config.Configuration) error {
	minimum := cnf.Ledger.BillMinimumNaira * model.KoboPerNaira
	if amountMinor < minimum {
		return apierror.NewAPIError(apierror.ErrBelowMinimum,
			fmt.Sprintf("Minimum bill payment is NGN %d", cnf.Ledger.BillMinimumNaira), nil)
	}
	return nil
}

// verifyPIN loads the account and checks the transaction PIN. Every debit
// path goes through this gate.
func (n *Nexabank) verifyPIN(ctx context.Context, accountID, pin string) (*model.Account, error) {
	account, err := n.datasource.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !secure.VerifySecret(pin, account.PINHash) {
		return nil, apierror.NewAPIError(apierror.ErrInvalidCredential, "Incorrect transaction PIN", nil)
	}
	return account, nil
}

// debitUnderLock runs the debit inside the account's distributed lock. The
// conditional update already prevents overdraw on its own; the lock keeps
// concurrent debits from the same account ordered so their recorded
// sequence matches their effects.
func (n *Nexabank) debitUnderLock(ctx context.Context, accountID string, txn *model.Transaction) (*model.Transaction, error) {
	locker := redlock.ForAccount(n.redis, accountID, model.GenerateUUIDWithSuffix("loc"))
	if err := locker.WaitLock(ctx, accountLockTTL, accountLockWait); err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Account is busy, please retry", err)
	}
	defer func() {
		if err := locker.Unlock(context.Background()); err != nil {
			logrus.Errorf("failed to release account lock: %v", err)
		}
	}()

	return n.datasource.RecordDebit(ctx, txn)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
