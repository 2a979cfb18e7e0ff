package fees

import "errors"

var (
	ErrUnknownCurrency = errors.New("unknown currency code")
	ErrInvalidInput    = errors.New("invalid price or quantity")
)

// Breakdown holds every monetary figure derived for one ticket purchase.
// It is computed fresh per call and never persisted by this package; the
// orders module copies the figures it needs onto the order record.
type Breakdown struct {
	Subtotal          float64 `json:"subtotal"`
	ProcessorFee      float64 `json:"processor_fee"`
	Commission        float64 `json:"commission"`
	TotalToCharge     float64 `json:"total_to_charge"`
	SellerGrossAmount float64 `json:"seller_gross_amount"`
	RemittanceFee     float64 `json:"remittance_fee"`
	SellerNetAmount   float64 `json:"seller_net_amount"`
}

// CalculationRequest is the input tuple for one fee calculation.
type CalculationRequest struct {
	UnitPrice      float64 `json:"price"`
	Quantity       int     `json:"quantity"`
	IsOrganization bool    `json:"is_organization"`
	CurrencyCode   string  `json:"currency_code"`
}

// VerificationResult pairs a fresh breakdown with the tamper-check outcome
// for a client-supplied total.
type VerificationResult struct {
	Breakdown Breakdown `json:"breakdown"`
	IsValid   bool      `json:"is_valid"`
}
