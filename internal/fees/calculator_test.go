package fees

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestCalculateIndividualSeller(t *testing.T) {
	// 2 tickets at ZAR 100: fixed fee is 1.50 per ticket
	breakdown, err := Calculate(100.00, 2, false, "ZAR")
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}

	if !almostEqual(breakdown.Subtotal, 200.00) {
		t.Errorf("subtotal = %v, want 200.00", breakdown.Subtotal)
	}
	if !almostEqual(breakdown.ProcessorFee, 8.80) {
		t.Errorf("processor fee = %v, want 8.80", breakdown.ProcessorFee)
	}
	if !almostEqual(breakdown.Commission, 10.00) {
		t.Errorf("commission = %v, want 10.00", breakdown.Commission)
	}
	if !almostEqual(breakdown.TotalToCharge, 218.80) {
		t.Errorf("total to charge = %v, want 218.80", breakdown.TotalToCharge)
	}
	if !almostEqual(breakdown.SellerGrossAmount, 190.00) {
		t.Errorf("seller gross = %v, want 190.00", breakdown.SellerGrossAmount)
	}
	if !almostEqual(breakdown.RemittanceFee, 2.85) {
		t.Errorf("remittance fee = %v, want 2.85", breakdown.RemittanceFee)
	}
	if !almostEqual(breakdown.SellerNetAmount, 187.15) {
		t.Errorf("seller net = %v, want 187.15", breakdown.SellerNetAmount)
	}
}

func TestCalculateOrganizationSeller(t *testing.T) {
	// Same purchase sold by an organization: commission drops to 4%
	breakdown, err := Calculate(100.00, 2, true, "ZAR")
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}

	if !almostEqual(breakdown.Commission, 8.00) {
		t.Errorf("commission = %v, want 8.00", breakdown.Commission)
	}
	if !almostEqual(breakdown.TotalToCharge, 216.80) {
		t.Errorf("total to charge = %v, want 216.80", breakdown.TotalToCharge)
	}
	if !almostEqual(breakdown.SellerGrossAmount, 192.00) {
		t.Errorf("seller gross = %v, want 192.00", breakdown.SellerGrossAmount)
	}
	if !almostEqual(breakdown.SellerNetAmount, 189.12) {
		t.Errorf("seller net = %v, want 189.12", breakdown.SellerNetAmount)
	}
}

func TestCalculateFixedFeeSchedule(t *testing.T) {
	tests := []struct {
		currencyCode     string
		unitPrice        float64
		quantity         int
		wantProcessorFee float64
	}{
		{"KES", 1000.00, 1, 59.00},   // 29.00 rate + 30.00 fixed
		{"EGP", 500.00, 2, 35.00},    // 29.00 rate + 6.00 fixed
		{"TZS", 10000.00, 1, 990.00}, // 290.00 rate + 700.00 fixed
		{"NGN", 100.00, 3, 9.60},     // default 0.30 fixed, no explicit entry
	}

	for _, tt := range tests {
		breakdown, err := Calculate(tt.unitPrice, tt.quantity, false, tt.currencyCode)
		if err != nil {
			t.Fatalf("Calculate(%s) returned error: %v", tt.currencyCode, err)
		}
		if !almostEqual(breakdown.ProcessorFee, tt.wantProcessorFee) {
			t.Errorf("%s processor fee = %v, want %v", tt.currencyCode, breakdown.ProcessorFee, tt.wantProcessorFee)
		}
	}
}

func TestCalculateNormalizesCurrencyCode(t *testing.T) {
	upper, err := Calculate(100.00, 1, false, "ZAR")
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	lower, err := Calculate(100.00, 1, false, " zar ")
	if err != nil {
		t.Fatalf("Calculate with lowercase code returned error: %v", err)
	}
	if !almostEqual(upper.TotalToCharge, lower.TotalToCharge) {
		t.Errorf("case-insensitive lookup disagrees: %v vs %v", upper.TotalToCharge, lower.TotalToCharge)
	}
}

func TestCalculateUnknownCurrency(t *testing.T) {
	_, err := Calculate(100.00, 1, false, "XXX")
	if !errors.Is(err, ErrUnknownCurrency) {
		t.Fatalf("Calculate(XXX) error = %v, want ErrUnknownCurrency", err)
	}
}

func TestCalculateZeroPrice(t *testing.T) {
	// Free tickets still carry the fixed processor fee
	breakdown, err := Calculate(0, 3, false, "ZAR")
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if !almostEqual(breakdown.ProcessorFee, 4.50) {
		t.Errorf("processor fee = %v, want 4.50", breakdown.ProcessorFee)
	}
	if !almostEqual(breakdown.TotalToCharge, 4.50) {
		t.Errorf("total to charge = %v, want 4.50", breakdown.TotalToCharge)
	}
}

func TestVerifyAcceptsMatchingTotal(t *testing.T) {
	req := CalculationRequest{UnitPrice: 100.00, Quantity: 2, IsOrganization: false, CurrencyCode: "ZAR"}

	result, err := Verify(req, 218.80)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !result.IsValid {
		t.Error("exact total flagged invalid")
	}

	// Drift under a cent is rounding noise, not tampering
	result, err = Verify(req, 218.80+0.009)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !result.IsValid {
		t.Error("sub-cent drift flagged invalid")
	}
}

func TestVerifyRejectsTamperedTotal(t *testing.T) {
	req := CalculationRequest{UnitPrice: 100.00, Quantity: 2, IsOrganization: false, CurrencyCode: "ZAR"}

	result, err := Verify(req, 218.80-0.02)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if result.IsValid {
		t.Error("tampered total flagged valid")
	}
	// The recomputed breakdown still comes back so the caller can log it
	if !almostEqual(result.Breakdown.TotalToCharge, 218.80) {
		t.Errorf("breakdown total = %v, want 218.80", result.Breakdown.TotalToCharge)
	}
}

func TestServiceRejectsInvalidInput(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name string
		req  CalculationRequest
	}{
		{"negative price", CalculationRequest{UnitPrice: -1, Quantity: 1, CurrencyCode: "ZAR"}},
		{"zero quantity", CalculationRequest{UnitPrice: 100, Quantity: 0, CurrencyCode: "ZAR"}},
		{"negative quantity", CalculationRequest{UnitPrice: 100, Quantity: -2, CurrencyCode: "ZAR"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Quote(tt.req); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Quote error = %v, want ErrInvalidInput", err)
			}
			if _, err := svc.VerifyTotal(tt.req, 100); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("VerifyTotal error = %v, want ErrInvalidInput", err)
			}
		})
	}
}
