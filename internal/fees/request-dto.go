package fees

// checkout fee quote request
type QuoteRequest struct {
	Price          float64 `json:"price" validate:"min=0"`
	Quantity       int     `json:"quantity" validate:"required,min=1"`
	IsOrganization bool    `json:"is_organization"`
	CurrencyCode   string  `json:"currency_code" validate:"required,len=3"`
}

// tamper-check request: the total the client displayed plus everything
// needed to recompute it. Field names are camelCase because this is the
// contract the checkout frontend already speaks.
type VerifyFeesRequest struct {
	Price          float64 `json:"price" validate:"min=0"`
	Quantity       int     `json:"quantity" validate:"required,min=1"`
	IsOrganization bool    `json:"isOrganization"`
	CurrencyCode   string  `json:"currencyCode" validate:"required,len=3"`
	StoredTotal    float64 `json:"storedTotal" validate:"min=0"`
}

func (r QuoteRequest) toCalculation() CalculationRequest {
	return CalculationRequest{
		UnitPrice:      r.Price,
		Quantity:       r.Quantity,
		IsOrganization: r.IsOrganization,
		CurrencyCode:   r.CurrencyCode,
	}
}

func (r VerifyFeesRequest) toCalculation() CalculationRequest {
	return CalculationRequest{
		UnitPrice:      r.Price,
		Quantity:       r.Quantity,
		IsOrganization: r.IsOrganization,
		CurrencyCode:   r.CurrencyCode,
	}
}
