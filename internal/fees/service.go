package fees

// Service fronts the pure calculator with the input validation the checkout
// endpoints need. In-process callers (orders) and the HTTP controller go
// through the same path so both produce identical figures.
type Service interface {
	Quote(req CalculationRequest) (*Breakdown, error)
	VerifyTotal(req CalculationRequest, clientTotal float64) (*VerificationResult, error)
}

type service struct{}

func NewService() Service {
	return &service{}
}

// Quote validates the request and returns a fresh breakdown.
func (s *service) Quote(req CalculationRequest) (*Breakdown, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return Calculate(req.UnitPrice, req.Quantity, req.IsOrganization, req.CurrencyCode)
}

// VerifyTotal validates the request, recomputes the breakdown and compares
// the client-supplied total against it.
func (s *service) VerifyTotal(req CalculationRequest, clientTotal float64) (*VerificationResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return Verify(req, clientTotal)
}

// validateRequest rejects nonsensical monetary input before it can reach the
// calculator, which by contract does not validate.
func validateRequest(req CalculationRequest) error {
	if req.UnitPrice < 0 || req.Quantity <= 0 {
		return ErrInvalidInput
	}
	return nil
}
