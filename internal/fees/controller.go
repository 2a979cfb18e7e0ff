package fees

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"ticketly/internal/shared/utils/response"
)

type Controller interface {
	VerifyFees(c *gin.Context)
	Quote(c *gin.Context)
}

type controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) Controller {
	return &controller{
		service:   service,
		validator: validator.New(),
	}
}

// VerifyFees recomputes the checkout total server-side and flags any client
// tampering. The response shape is the wire contract the checkout frontend
// already consumes: camelCase breakdown fields plus isValid at the top
// level, and a bare {"error": ...} body on failure. Keep it flat.
func (ctrl *controller) VerifyFees(c *gin.Context) {
	var req VerifyFeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := ctrl.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ctrl.service.VerifyTotal(req.toCalculation(), req.StoredTotal)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownCurrency):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown currency code: " + req.CurrencyCode})
		case errors.Is(err, ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be non-negative and quantity positive"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify fees"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subtotal":          result.Breakdown.Subtotal,
		"processorFee":      result.Breakdown.ProcessorFee,
		"commission":        result.Breakdown.Commission,
		"totalToCharge":     result.Breakdown.TotalToCharge,
		"sellerGrossAmount": result.Breakdown.SellerGrossAmount,
		"remittanceFee":     result.Breakdown.RemittanceFee,
		"sellerNetAmount":   result.Breakdown.SellerNetAmount,
		"isValid":           result.IsValid,
	})
}

// Quote returns the fee breakdown the checkout UI previews before payment.
func (ctrl *controller) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := ctrl.validator.Struct(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	breakdown, err := ctrl.service.Quote(req.toCalculation())
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownCurrency):
			response.RespondJSON(c, "error", http.StatusBadRequest, "Unknown currency code", nil, req.CurrencyCode)
		case errors.Is(err, ErrInvalidInput):
			response.RespondJSON(c, "error", http.StatusBadRequest, "Price must be non-negative and quantity positive", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to calculate fees", nil, nil)
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Fee breakdown calculated", breakdown, nil)
}
