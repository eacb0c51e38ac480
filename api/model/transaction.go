package model

// Transfer is the payload for an outward bank transfer. The amount is in
// naira; conversion to minor units happens at the boundary.
type Transfer struct {
	AccountNumber string  `json:"account_number"`
	BankCode      string  `json:"bank_code"`
	Amount        float64 `json:"amount"`
	PIN           string  `json:"pin"`
	Narration     string  `json:"narration"`
}

type BuyAirtime struct {
	Provider string  `json:"provider"`
	Phone    string  `json:"phone"`
	Amount   float64 `json:"amount"`
	PIN      string  `json:"pin"`
}

// PayBill covers electricity, cable, and data bills. Plan is required for
// data; meter_number doubles as the smartcard number for cable.
type PayBill struct {
	BillType    string  `json:"bill_type"`
	Provider    string  `json:"provider"`
	Plan        string  `json:"plan"`
	MeterNumber string  `json:"meter_number"`
	Phone       string  `json:"phone"`
	Amount      float64 `json:"amount"`
	PIN         string  `json:"pin"`
}
