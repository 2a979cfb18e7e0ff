package currencies

import "strings"

// profiles is the static table of supported countries. One entry per country.
// A currency code is NOT unique across entries: the whole CFA franc zone shares
// XOF/XAF, so lookups by currency code return the first match in table order.
var profiles = []CurrencyProfile{
	{CountryCode: "EG", CurrencyCode: "EGP", CurrencyName: "Egyptian Pound", CurrencySymbol: "E£"},
	{CountryCode: "KE", CurrencyCode: "KES", CurrencyName: "Kenyan Shilling", CurrencySymbol: "KSh"},
	{CountryCode: "ZA", CurrencyCode: "ZAR", CurrencyName: "South African Rand", CurrencySymbol: "R"},
	{CountryCode: "GH", CurrencyCode: "GHS", CurrencyName: "Ghanaian Cedi", CurrencySymbol: "GH₵"},
	{CountryCode: "NG", CurrencyCode: "NGN", CurrencyName: "Nigerian Naira", CurrencySymbol: "₦"},
	{CountryCode: "TZ", CurrencyCode: "TZS", CurrencyName: "Tanzanian Shilling", CurrencySymbol: "TSh"},
	{CountryCode: "MA", CurrencyCode: "MAD", CurrencyName: "Moroccan Dirham", CurrencySymbol: "DH"},
	{CountryCode: "UG", CurrencyCode: "UGX", CurrencyName: "Ugandan Shilling", CurrencySymbol: "USh"},
	{CountryCode: "ZM", CurrencyCode: "ZMW", CurrencyName: "Zambian Kwacha", CurrencySymbol: "ZK"},
	{CountryCode: "RW", CurrencyCode: "RWF", CurrencyName: "Rwandan Franc", CurrencySymbol: "FRw"},
	{CountryCode: "ET", CurrencyCode: "ETB", CurrencyName: "Ethiopian Birr", CurrencySymbol: "Br"},
	{CountryCode: "SN", CurrencyCode: "XOF", CurrencyName: "West African CFA Franc", CurrencySymbol: "CFA"},
	{CountryCode: "CI", CurrencyCode: "XOF", CurrencyName: "West African CFA Franc", CurrencySymbol: "CFA"},
	{CountryCode: "BJ", CurrencyCode: "XOF", CurrencyName: "West African CFA Franc", CurrencySymbol: "CFA"},
	{CountryCode: "BF", CurrencyCode: "XOF", CurrencyName: "West African CFA Franc", CurrencySymbol: "CFA"},
	{CountryCode: "ML", CurrencyCode: "XOF", CurrencyName: "West African CFA Franc", CurrencySymbol: "CFA"},
	{CountryCode: "TG", CurrencyCode: "XOF", CurrencyName: "West African CFA Franc", CurrencySymbol: "CFA"},
	{CountryCode: "CM", CurrencyCode: "XAF", CurrencyName: "Central African CFA Franc", CurrencySymbol: "FCFA"},
	{CountryCode: "GA", CurrencyCode: "XAF", CurrencyName: "Central African CFA Franc", CurrencySymbol: "FCFA"},
}

// All returns every supported currency profile in table order.
// Callers must not modify the returned slice.
func All() []CurrencyProfile {
	return profiles
}

// GetByCountryCode resolves a profile by ISO 3166-1 alpha-2 country code.
func GetByCountryCode(code string) (*CurrencyProfile, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for i := range profiles {
		if profiles[i].CountryCode == code {
			return &profiles[i], true
		}
	}
	return nil, false
}

// GetByCurrencyCode resolves a profile by ISO 4217 currency code. Shared
// regional currencies match the first country in table order; every field
// that matters downstream (the fee schedule) is keyed on the currency code
// itself, so the ambiguity is harmless.
func GetByCurrencyCode(code string) (*CurrencyProfile, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for i := range profiles {
		if profiles[i].CurrencyCode == code {
			return &profiles[i], true
		}
	}
	return nil, false
}

// IsSupported reports whether the currency code resolves to a known profile.
func IsSupported(currencyCode string) bool {
	_, ok := GetByCurrencyCode(currencyCode)
	return ok
}
