package currencies

import "testing"

func TestGetByCountryCode(t *testing.T) {
	profile, ok := GetByCountryCode("ZA")
	if !ok {
		t.Fatal("GetByCountryCode(ZA) not found")
	}
	if profile.CurrencyCode != "ZAR" {
		t.Errorf("currency code = %s, want ZAR", profile.CurrencyCode)
	}

	// Lookup normalizes case and whitespace
	profile, ok = GetByCountryCode(" ke ")
	if !ok {
		t.Fatal("GetByCountryCode(' ke ') not found")
	}
	if profile.CurrencyCode != "KES" {
		t.Errorf("currency code = %s, want KES", profile.CurrencyCode)
	}

	if _, ok := GetByCountryCode("US"); ok {
		t.Error("GetByCountryCode(US) found, want unsupported")
	}
}

func TestGetByCurrencyCodeSharedCurrency(t *testing.T) {
	// Six countries share XOF; the lookup returns the first in table order
	profile, ok := GetByCurrencyCode("XOF")
	if !ok {
		t.Fatal("GetByCurrencyCode(XOF) not found")
	}
	if profile.CountryCode != "SN" {
		t.Errorf("country code = %s, want SN (first XOF entry)", profile.CountryCode)
	}
}

func TestIsSupported(t *testing.T) {
	for _, code := range []string{"EGP", "KES", "ZAR", "GHS", "NGN", "XOF", "XAF"} {
		if !IsSupported(code) {
			t.Errorf("IsSupported(%s) = false, want true", code)
		}
	}
	for _, code := range []string{"USD", "EUR", "XXX", ""} {
		if IsSupported(code) {
			t.Errorf("IsSupported(%s) = true, want false", code)
		}
	}
}

func TestAllReturnsOneEntryPerCountry(t *testing.T) {
	seen := make(map[string]bool)
	for _, profile := range All() {
		if seen[profile.CountryCode] {
			t.Errorf("duplicate country code %s", profile.CountryCode)
		}
		seen[profile.CountryCode] = true

		if profile.CurrencyCode == "" || profile.CurrencyName == "" {
			t.Errorf("incomplete profile for %s", profile.CountryCode)
		}
	}
	if len(seen) == 0 {
		t.Fatal("All() returned no profiles")
	}
}
