package api

import (
	"fmt"
	"net/http"
	"strconv"

	"tipi-reserve/internal/pkg/config"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 512

type QRHandler struct {
	event config.EventConfig
}

func NewQRHandler(event config.EventConfig) *QRHandler {
	return &QRHandler{event: event}
}

// @Summary TWINT payment QR code
// @Description Render a QR code encoding the TWINT payment request for a booking
// @Tags payments
// @Produce image/png
// @Param amount query int true "Amount in CHF"
// @Param ref query string true "Booking reference"
// @Success 200 {string} string "PNG image"
// @Failure 400 {object} map[string]string
// @Router /qr [get]
func (h *QRHandler) PaymentQR(c *gin.Context) {
	if h.event.TwintPhone == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "TWINT payments are not configured",
		})
		return
	}

	amount, err := strconv.Atoi(c.Query("amount"))
	if err != nil || amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid amount",
		})
		return
	}
	ref := c.Query("ref")
	if ref == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing reference",
		})
		return
	}

	payload := fmt.Sprintf("TWINT:%s?amount=%d&ref=%s", h.event.TwintPhone, amount, ref)
	png, err := qrcode.Encode(payload, qrcode.Medium, qrImageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// The image for a given reference never changes.
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/png", png)
}
