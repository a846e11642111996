package api

import (
	"net/http"

	resdto "tipi-reserve/internal/handler/dto/response"
	"tipi-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StockHandler struct {
	stockQueries queries.StockQueries
}

func NewStockHandler(stockQueries queries.StockQueries) *StockHandler {
	return &StockHandler{
		stockQueries: stockQueries,
	}
}

// @Summary Remaining stock
// @Description List every lodging with its remaining units
// @Tags stock
// @Produce json
// @Success 200 {array} resdto.StockResponse
// @Router /stock [get]
func (h *StockHandler) Remaining(c *gin.Context) {
	views, err := h.stockQueries.Remaining(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromStockViews(views))
}
