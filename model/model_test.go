package model

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUUIDWithSuffix(t *testing.T) {
	module := "acc"
	id := GenerateUUIDWithSuffix(module)
	assert.Contains(t, id, module+"_")
}

func TestNewReference(t *testing.T) {
	ref := NewReference()
	assert.Regexp(t, regexp.MustCompile(`^NEXA-\d{13}-\d{4}$`), ref)

	welcome := NewWelcomeReference()
	assert.Regexp(t, regexp.MustCompile(`^WELCOME-\d{13}-\d{4}$`), welcome)
}

func TestNewReferenceUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref := NewReference()
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}

func TestMajorToMinor(t *testing.T) {
	assert.Equal(t, int64(50000), MajorToMinor(500))
	assert.Equal(t, int64(4000), MajorToMinor(40))
	assert.Equal(t, int64(50), MajorToMinor(0.5))

	// fractional kobo truncates toward zero
	assert.Equal(t, int64(100), MajorToMinor(1.009))
	assert.Equal(t, int64(33), MajorToMinor(0.333))
	assert.Equal(t, int64(0), MajorToMinor(0))
}

func TestMinorToMajor(t *testing.T) {
	assert.Equal(t, float64(500), MinorToMajor(50000))
	assert.Equal(t, 0.5, MinorToMajor(50))
	assert.Equal(t, 2000.5, MinorToMajor(200050))
}

func TestTransactionTotalDebit(t *testing.T) {
	txn := &Transaction{AmountMinor: 50000, FeeMinor: 50}
	assert.Equal(t, int64(50050), txn.TotalDebitMinor())
}

func TestAccountDisplayName(t *testing.T) {
	account := &Account{FirstName: "Ada", LastName: "Obi"}
	assert.Equal(t, "Ada Obi", account.DisplayName())
}

func TestPrimaryLinkedAccount(t *testing.T) {
	account := &Account{}
	assert.Equal(t, LinkedAccount{}, account.PrimaryLinkedAccount())

	account.LinkedAccounts = []LinkedAccount{
		{AccountNumber: "0123456789", AccountName: "Ada Obi", BankName: "NexaBank"},
	}
	assert.Equal(t, "0123456789", account.PrimaryLinkedAccount().AccountNumber)
}
