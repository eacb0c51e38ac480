package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBank(t *testing.T) {
	bank, ok := Bank("044")
	assert.True(t, ok)
	assert.Equal(t, "Access Bank", bank.Name)

	_, ok = Bank("999")
	assert.False(t, ok)
}

func TestTelco(t *testing.T) {
	telco, ok := Telco("mtn")
	assert.True(t, ok)
	assert.Equal(t, "MTN", telco.Name)

	_, ok = Telco("vodafone")
	assert.False(t, ok)
}

func TestBillKind(t *testing.T) {
	for _, id := range []string{"airtime", "data", "electricity", "cable"} {
		_, ok := BillKind(id)
		assert.True(t, ok, "expected bill kind %s", id)
	}

	_, ok := BillKind("water")
	assert.False(t, ok)
}

func TestProviderForBillKind(t *testing.T) {
	provider, ok := ProviderForBillKind(BillKindElectricity, "ikedc")
	assert.True(t, ok)
	assert.Equal(t, "IKEDC", provider.Name)

	provider, ok = ProviderForBillKind(BillKindCable, "dstv")
	assert.True(t, ok)
	assert.Equal(t, "DSTV", provider.Name)

	provider, ok = ProviderForBillKind(BillKindData, "glo")
	assert.True(t, ok)
	assert.Equal(t, "Glo", provider.Name)

	// providers never cross registries
	_, ok = ProviderForBillKind(BillKindElectricity, "dstv")
	assert.False(t, ok)
	_, ok = ProviderForBillKind(BillKindCable, "ikedc")
	assert.False(t, ok)
}

func TestPlan(t *testing.T) {
	plan, ok := Plan("glo-1gb")
	assert.True(t, ok)
	assert.Equal(t, int64(45000), plan.PriceKobo)

	_, ok = Plan("mtn-100gb")
	assert.False(t, ok)
}

func TestOptions(t *testing.T) {
	opts := Options()
	for _, key := range []string{"banks", "telcos", "bill_types", "electricity_providers", "cable_providers", "data_plans"} {
		assert.Contains(t, opts, key)
	}
}
