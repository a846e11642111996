package api

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"tipi-reserve/internal/domain/booking"
	reqdto "tipi-reserve/internal/handler/dto/request"
	resdto "tipi-reserve/internal/handler/dto/response"
	"tipi-reserve/internal/usecase/commands"
	"tipi-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminUseCase   commands.AdminCommands
	bookingQueries queries.BookingQueries
}

func NewAdminHandler(adminUseCase commands.AdminCommands, bookingQueries queries.BookingQueries) *AdminHandler {
	return &AdminHandler{
		adminUseCase:   adminUseCase,
		bookingQueries: bookingQueries,
	}
}

// @Summary List bookings
// @Description List bookings, newest first
// @Tags admin
// @Produce json
// @Param include_cancelled query bool false "Include cancelled bookings"
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /admin/reservations [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	includeCancelled := c.Query("include_cancelled") == "true"

	views, err := h.bookingQueries.List(c.Request.Context(), includeCancelled)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	out := make([]*resdto.BookingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, resdto.FromBookingView(v))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get booking
// @Tags admin
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /admin/reservations/{id} [get]
func (h *AdminHandler) GetBooking(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

var csvHeader = []string{"Réf", "Nom", "Email", "Logement", "Qte", "Total CHF", "Paiement", "Date"}

// @Summary Export bookings as CSV
// @Description Download the booking list as a semicolon-separated CSV
// @Tags admin
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} map[string]string
// @Router /admin/reservations/export [get]
func (h *AdminHandler) ExportCSV(c *gin.Context) {
	views, err := h.bookingQueries.List(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="reservations.csv"`)
	c.Status(http.StatusOK)

	// BOM so spreadsheet tools decode the accents correctly.
	if _, err := c.Writer.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		_ = c.Error(err)
		return
	}

	w := csv.NewWriter(c.Writer)
	w.Comma = ';'

	if err := w.Write(csvHeader); err != nil {
		_ = c.Error(err)
		return
	}
	for _, v := range views {
		record := []string{
			v.Code,
			v.GuestName,
			v.Email,
			v.LodgingName,
			strconv.Itoa(v.Quantity),
			strconv.Itoa(v.TotalPriceCHF),
			paymentLabel(v.PaymentStatus),
			v.CreatedAt.Format("02.01.2006 15:04"),
		}
		if err := w.Write(record); err != nil {
			_ = c.Error(err)
			return
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = c.Error(err)
	}
}

func paymentLabel(status string) string {
	if status == booking.PaymentPaid.String() {
		return "Payé"
	}
	return "En attente"
}

// @Summary Update booking
// @Description Set the payment status and/or cancel the booking
// @Tags admin
// @Accept json
// @Param id path string true "Booking ID"
// @Param request body reqdto.PatchBookingRequest true "Fields to update"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /admin/reservations/{id} [patch]
func (h *AdminHandler) PatchBooking(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.PatchBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	if req.PaymentStatus == nil && req.Status == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Nothing to update",
		})
		return
	}
	if req.Status != nil && *req.Status != booking.StatusCancelled.String() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Status can only be set to %q", booking.StatusCancelled),
		})
		return
	}

	if req.PaymentStatus != nil {
		if err := h.adminUseCase.SetPaymentStatus(c.Request.Context(), id, *req.PaymentStatus); err != nil {
			if errors.Is(err, commands.ErrInvalidPaymentStatus) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "Invalid payment status",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
	}
	if req.Status != nil {
		if err := h.adminUseCase.Cancel(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// @Summary Cancel booking
// @Description Cancel a booking and release its units. Repeats are no-ops.
// @Tags admin
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /admin/reservations/{id} [delete]
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.adminUseCase.Cancel(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Preview purge of cancelled bookings
// @Description Count cancelled bookings past the retention cutoff without deleting
// @Tags admin
// @Produce json
// @Param older_than_days query int false "Only match bookings cancelled at least this many days ago"
// @Param limit query int false "Cap the number of matched bookings"
// @Success 200 {object} resdto.PurgeResponse
// @Router /admin/purge-cancelled [get]
func (h *AdminHandler) PurgePreview(c *gin.Context) {
	h.runPurge(c, true)
}

// @Summary Purge cancelled bookings
// @Description Delete cancelled bookings past the retention cutoff. Stock is untouched.
// @Tags admin
// @Produce json
// @Param older_than_days query int false "Only match bookings cancelled at least this many days ago"
// @Param limit query int false "Cap the number of deleted bookings"
// @Success 200 {object} resdto.PurgeResponse
// @Router /admin/purge-cancelled [post]
func (h *AdminHandler) PurgeExecute(c *gin.Context) {
	h.runPurge(c, false)
}

func (h *AdminHandler) runPurge(c *gin.Context, dryRun bool) {
	var q reqdto.PurgeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	result, err := h.adminUseCase.PurgeCancelled(c.Request.Context(), commands.PurgeOptions{
		OlderThanDays: q.OlderThanDays,
		Limit:         q.Limit,
		DryRun:        dryRun,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPurgeResult(result))
}

// @Summary Reset lodging stock
// @Description Zero the reserved count of one lodging
// @Tags admin
// @Param id path string true "Lodging ID"
// @Success 204 "No Content"
// @Router /admin/stock/{id}/reset [post]
func (h *AdminHandler) ResetStock(c *gin.Context) {
	if err := h.adminUseCase.ResetStock(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reset all stock
// @Description Zero the reserved count of every lodging
// @Tags admin
// @Success 204 "No Content"
// @Router /admin/stock/reset [post]
func (h *AdminHandler) ResetAllStock(c *gin.Context) {
	if err := h.adminUseCase.ResetAllStock(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Recount stock
// @Description Rebuild every reserved count from confirmed bookings
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.RecountResponse
// @Router /admin/stock/recount [post]
func (h *AdminHandler) RecountStock(c *gin.Context) {
	totals, err := h.adminUseCase.RecountStock(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.RecountResponse{ReservedUnits: totals})
}

func (h *AdminHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return uuid.Nil, false
	}
	return id, true
}
