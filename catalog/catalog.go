// Package catalog holds the static reference data the ledger engine
// validates payment requests against: the bank registry for transfers and
// the telco, electricity, cable, and data-plan registries for bills.
// Lookups are pure; nothing here mutates.
package catalog

// Entry is one registry row, keyed by its ID.
type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DataPlan is a fixed-price data bundle. PriceKobo overrides any
// caller-supplied amount when a data bill is paid.
type DataPlan struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PriceKobo int64  `json:"price"`
	Validity  string `json:"validity"`
}

const (
	BillKindAirtime     = "airtime"
	BillKindData        = "data"
	BillKindElectricity = "electricity"
	BillKindCable       = "cable"
)

var banks = []Entry{
	{ID: "044", Name: "Access Bank"},
	{ID: "023", Name: "Citibank Nigeria"},
	{ID: "050", Name: "Ecobank Nigeria"},
	{ID: "070", Name: "Fidelity Bank"},
	{ID: "011", Name: "First Bank of Nigeria"},
	{ID: "214", Name: "First City Monument Bank"},
	{ID: "058", Name: "Guaranty Trust Bank"},
	{ID: "030", Name: "Heritage Bank"},
	{ID: "301", Name: "Jaiz Bank"},
	{ID: "082", Name: "Keystone Bank"},
	{ID: "076", Name: "Polaris Bank"},
	{ID: "221", Name: "Stanbic IBTC Bank"},
	{ID: "068", Name: "Standard Chartered Bank"},
	{ID: "232", Name: "Sterling Bank"},
	{ID: "100", Name: "Suntrust Bank"},
	{ID: "032", Name: "Union Bank of Nigeria"},
	{ID: "033", Name: "United Bank For Africa"},
	{ID: "215", Name: "Unity Bank"},
	{ID: "035", Name: "Wema Bank"},
	{ID: "057", Name: "Zenith Bank"},
}

var telcos = []Entry{
	{ID: "mtn", Name: "MTN"},
	{ID: "airtel", Name: "Airtel"},
	{ID: "glo", Name: "Glo"},
	{ID: "9mobile", Name: "9mobile"},
}

var billKinds = []Entry{
	{ID: BillKindAirtime, Name: "Airtime"},
	{ID: BillKindData, Name: "Data"},
	{ID: BillKindElectricity, Name: "Electricity"},
	{ID: BillKindCable, Name: "Cable TV"},
}

var electricityProviders = []Entry{
	{ID: "ikedc", Name: "IKEDC"},
	{ID: "ekedc", Name: "EKEDC"},
	{ID: "phed", Name: "PHED"},
	{ID: "kedco", Name: "KEDCO"},
}

var cableProviders = []Entry{
	{ID: "dstv", Name: "DSTV"},
	{ID: "gotv", Name: "GOTV"},
	{ID: "startimes", Name: "StarTimes"},
}

var dataPlans = []DataPlan{
	{ID: "mtn-1gb", Name: "MTN 1GB", PriceKobo: 50000, Validity: "30 days"},
	{ID: "airtel-1gb", Name: "Airtel 1GB", PriceKobo: 50000, Validity: "30 days"},
	{ID: "glo-1gb", Name: "Glo 1GB", PriceKobo: 45000, Validity: "30 days"},
	{ID: "9mobile-1gb", Name: "9mobile 1GB", PriceKobo: 50000, Validity: "30 days"},
}

func find(entries []Entry, id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Bank resolves a bank by its CBN bank code.
func Bank(code string) (Entry, bool) {
	return find(banks, code)
}

// Telco resolves a mobile network by ID.
func Telco(id string) (Entry, bool) {
	return find(telcos, id)
}

// BillKind reports whether the given bill kind is one of the supported set.
func BillKind(id string) (Entry, bool) {
	return find(billKinds, id)
}

// ElectricityProvider resolves an electricity distributor by ID.
func ElectricityProvider(id string) (Entry, bool) {
	return find(electricityProviders, id)
}

// CableProvider resolves a cable TV provider by ID.
func CableProvider(id string) (Entry, bool) {
	return find(cableProviders, id)
}

// Plan resolves a fixed-price data plan by ID.
func Plan(id string) (DataPlan, bool) {
	for _, p := range dataPlans {
		if p.ID == id {
			return p, true
		}
	}
	return DataPlan{}, false
}

// ProviderForBillKind resolves a provider against the registry matching the
// bill kind: electricity against distributors, cable against cable
// providers, data against telcos. Airtime providers resolve through Telco
// directly.
func ProviderForBillKind(billKind, providerID string) (Entry, bool) {
	switch billKind {
	case BillKindElectricity:
		return ElectricityProvider(providerID)
	case BillKindCable:
		return CableProvider(providerID)
	case BillKindData:
		return Telco(providerID)
	default:
		return Entry{}, false
	}
}

// Options bundles every registry for the bill-options endpoint.
func Options() map[string]interface{} {
	return map[string]interface{}{
		"banks":                 banks,
		"telcos":                telcos,
		"bill_types":            billKinds,
		"electricity_providers": electricityProviders,
		"cable_providers":       cableProviders,
		"data_plans":            dataPlans,
	}
}
