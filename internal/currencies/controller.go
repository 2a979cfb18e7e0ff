package currencies

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketly/internal/shared/utils/response"
)

type Controller interface {
	ListCurrencies(c *gin.Context)
	GetCurrencyByCountry(c *gin.Context)
}

type controller struct{}

func NewController() Controller {
	return &controller{}
}

func (ctrl *controller) ListCurrencies(c *gin.Context) {
	all := All()
	response.RespondJSON(c, "success", http.StatusOK, "Supported currencies retrieved", CurrencyListResponse{
		Currencies: all,
		TotalCount: len(all),
	}, nil)
}

func (ctrl *controller) GetCurrencyByCountry(c *gin.Context) {
	countryCode := c.Param("countryCode")

	profile, ok := GetByCountryCode(countryCode)
	if !ok {
		response.RespondJSON(c, "error", http.StatusNotFound, "Country is not supported", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Currency retrieved", profile, nil)
}
