package currencies

// CurrencyProfile describes the currency used in one supported country.
// Profiles are static reference data; they are never created or mutated at runtime.
type CurrencyProfile struct {
	CountryCode    string `json:"country_code"`
	CurrencyCode   string `json:"currency_code"`
	CurrencyName   string `json:"currency_name"`
	CurrencySymbol string `json:"currency_symbol"`
}

type CurrencyListResponse struct {
	Currencies []CurrencyProfile `json:"currencies"`
	TotalCount int               `json:"total_count"`
}
