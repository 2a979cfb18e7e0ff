package fees

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	controller := NewController(NewService())
	SetupLegacyFeeRoutes(engine, controller)
	return engine
}

func postVerifyFees(t *testing.T, engine *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/verify-fees", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestVerifyFeesEndpointValidTotal(t *testing.T) {
	engine := setupTestEngine()

	w := postVerifyFees(t, engine, map[string]interface{}{
		"price":         100.00,
		"quantity":      2,
		"currencyCode": "ZAR",
		"storedTotal":  218.80,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// The contract is a flat camelCase body: breakdown fields plus isValid,
	// no envelope
	for _, field := range []string{
		"subtotal", "processorFee", "commission", "totalToCharge",
		"sellerGrossAmount", "remittanceFee", "sellerNetAmount", "isValid",
	} {
		if _, ok := resp[field]; !ok {
			t.Errorf("response missing field %q", field)
		}
	}
	if _, ok := resp["data"]; ok {
		t.Error("response wrapped in an envelope, want flat body")
	}

	if valid, _ := resp["isValid"].(bool); !valid {
		t.Error("isValid = false for a matching total")
	}
	if got := resp["subtotal"].(float64); got != 200.00 {
		t.Errorf("subtotal = %v, want 200.00", got)
	}
}

func TestVerifyFeesEndpointOrganizationFlag(t *testing.T) {
	engine := setupTestEngine()

	// An organization seller pays 4% commission, so the matching total drops
	// to 216.80. The flag must bind from the camelCase key.
	w := postVerifyFees(t, engine, map[string]interface{}{
		"price":          100.00,
		"quantity":       2,
		"isOrganization": true,
		"currencyCode":   "ZAR",
		"storedTotal":    216.80,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if valid, _ := resp["isValid"].(bool); !valid {
		t.Error("isValid = false for a matching organization total")
	}
	if got := resp["commission"].(float64); got != 8.00 {
		t.Errorf("commission = %v, want 8.00", got)
	}
}

func TestVerifyFeesEndpointTamperedTotal(t *testing.T) {
	engine := setupTestEngine()

	w := postVerifyFees(t, engine, map[string]interface{}{
		"price":         100.00,
		"quantity":      2,
		"currencyCode": "ZAR",
		"storedTotal":  999.99,
	})

	// Tampering is reported in the body, not via status code
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if valid, _ := resp["isValid"].(bool); valid {
		t.Error("isValid = true for a tampered total")
	}
}

func TestVerifyFeesEndpointUnknownCurrency(t *testing.T) {
	engine := setupTestEngine()

	w := postVerifyFees(t, engine, map[string]interface{}{
		"price":         100.00,
		"quantity":      2,
		"currencyCode": "XXX",
		"storedTotal":  218.80,
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if _, ok := resp["error"]; !ok {
		t.Error(`error response missing "error" field`)
	}
}

func TestVerifyFeesEndpointMalformedBody(t *testing.T) {
	engine := setupTestEngine()

	req := httptest.NewRequest(http.MethodPost, "/api/verify-fees", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestVerifyFeesEndpointInvalidQuantity(t *testing.T) {
	engine := setupTestEngine()

	w := postVerifyFees(t, engine, map[string]interface{}{
		"price":         100.00,
		"quantity":      0,
		"currencyCode": "ZAR",
		"storedTotal":  218.80,
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
