package fees

import (
	"math"
	"strings"

	"ticketly/internal/currencies"
)

// Fee schedule. The processor charges a percentage of the subtotal plus a
// fixed amount per ticket; the platform takes a commission on the subtotal
// (organizations get the lower rate); paying out the seller costs a flat
// percentage of the seller's gross. All arithmetic is float64 in units of
// the target currency, no conversion.
const (
	ProcessorRate          = 0.029
	CommissionIndividual   = 0.05
	CommissionOrganization = 0.04
	RemittanceRate         = 0.015

	// DefaultFixedFee applies to any supported currency without an explicit
	// entry in fixedFeePerUnit.
	DefaultFixedFee = 0.30

	// VerifyTolerance is the maximum accepted drift between a client-supplied
	// total and the recomputed one before the purchase is treated as tampered.
	VerifyTolerance = 0.01
)

// fixedFeePerUnit is the processor's fixed per-ticket fee by currency code.
// These values mirror the processor's published schedule and must not be
// changed without a matching schedule update.
var fixedFeePerUnit = map[string]float64{
	"EGP": 3.00,
	"KES": 30.00,
	"ZAR": 1.50,
	"GHS": 0.30,
	"TZS": 700.00,
	"MAD": 3.00,
	"XOF": 100.00,
	"UGX": 1000.00,
	"ZMW": 3.00,
}

// FixedFeeForCurrency returns the processor's fixed per-ticket fee for a
// currency code, falling back to DefaultFixedFee for currencies the schedule
// does not list explicitly.
func FixedFeeForCurrency(currencyCode string) float64 {
	if fee, ok := fixedFeePerUnit[currencyCode]; ok {
		return fee
	}
	return DefaultFixedFee
}

// Calculate derives the full monetary breakdown for one ticket purchase.
// It is a pure function: no side effects, safe for unlimited concurrent use.
// The currency code must resolve to a supported currency profile or the call
// fails with ErrUnknownCurrency. Price and quantity sanity checks are the
// caller's job (the service layer rejects them with ErrInvalidInput before
// reaching here).
func Calculate(unitPrice float64, quantity int, isOrganization bool, currencyCode string) (*Breakdown, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if !currencies.IsSupported(code) {
		return nil, ErrUnknownCurrency
	}

	subtotal := unitPrice * float64(quantity)
	processorFee := subtotal*ProcessorRate + FixedFeeForCurrency(code)*float64(quantity)

	commissionRate := CommissionIndividual
	if isOrganization {
		commissionRate = CommissionOrganization
	}
	commission := subtotal * commissionRate

	totalToCharge := subtotal + processorFee + commission
	sellerGross := subtotal - commission
	remittanceFee := sellerGross * RemittanceRate

	return &Breakdown{
		Subtotal:          subtotal,
		ProcessorFee:      processorFee,
		Commission:        commission,
		TotalToCharge:     totalToCharge,
		SellerGrossAmount: sellerGross,
		RemittanceFee:     remittanceFee,
		SellerNetAmount:   sellerGross - remittanceFee,
	}, nil
}

// Verify recomputes the breakdown for a request and checks the client-supplied
// total against it. A drift of a cent or more marks the request invalid; the
// payment flow must refuse to proceed on an invalid result.
func Verify(req CalculationRequest, clientTotal float64) (*VerificationResult, error) {
	breakdown, err := Calculate(req.UnitPrice, req.Quantity, req.IsOrganization, req.CurrencyCode)
	if err != nil {
		return nil, err
	}

	return &VerificationResult{
		Breakdown: *breakdown,
		IsValid:   math.Abs(breakdown.TotalToCharge-clientTotal) < VerifyTolerance,
	}, nil
}
