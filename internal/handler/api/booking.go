package api

import (
	"errors"
	"html/template"
	"net/http"

	"tipi-reserve/internal/domain/lodging"
	reqdto "tipi-reserve/internal/handler/dto/request"
	resdto "tipi-reserve/internal/handler/dto/response"
	"tipi-reserve/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUseCase commands.BookingCommands
}

func NewBookingHandler(bookingUseCase commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Create booking
// @Description Reserve units of a lodging for the event night
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		var insufficient *lodging.InsufficientStockError
		switch {
		case errors.Is(err, commands.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		case errors.Is(err, commands.ErrLodgingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lodging not found",
			})
		case errors.As(err, &insufficient):
			c.JSON(http.StatusConflict, gin.H{
				"error":     "Not enough units available",
				"remaining": insufficient.Remaining,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateResult(result))
}

// The self-cancel endpoint is opened from an email link, so it answers with a
// small HTML card rather than JSON.
var cancelPageTmpl = template.Must(template.New("cancel").Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; background: #f5f2ec; margin: 0; padding: 40px 16px; }
.card { max-width: 480px; margin: 0 auto; background: #fff; border-radius: 12px; padding: 32px; box-shadow: 0 2px 12px rgba(0,0,0,.08); text-align: center; }
h1 { font-size: 1.3rem; margin: 0 0 12px; }
p { color: #555; margin: 0; }
</style>
</head>
<body>
<div class="card">
<h1>{{.Title}}</h1>
<p>{{.Message}}</p>
</div>
</body>
</html>
`))

type cancelPage struct {
	Title   string
	Message string
}

// @Summary Cancel booking by token
// @Description Cancel a booking through the single-use link sent by email
// @Tags bookings
// @Produce html
// @Param token query string true "Cancel token"
// @Success 200 {string} string "HTML confirmation page"
// @Failure 404 {string} string "HTML error page"
// @Router /reservations/cancel [get]
func (h *BookingHandler) CancelByToken(c *gin.Context) {
	token := c.Query("token")

	outcome, err := h.bookingUseCase.CancelByToken(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, commands.ErrTokenInvalid) {
			h.renderCancelPage(c, http.StatusNotFound, cancelPage{
				Title:   "Lien invalide",
				Message: "Ce lien d'annulation est invalide ou a déjà expiré.",
			})
			return
		}
		h.renderCancelPage(c, http.StatusInternalServerError, cancelPage{
			Title:   "Erreur",
			Message: "Une erreur est survenue. Merci de réessayer plus tard.",
		})
		return
	}

	if outcome == commands.CancelOutcomeAlreadyCancelled {
		h.renderCancelPage(c, http.StatusOK, cancelPage{
			Title:   "Réservation déjà annulée",
			Message: "Cette réservation a déjà été annulée. Aucune action n'est nécessaire.",
		})
		return
	}

	h.renderCancelPage(c, http.StatusOK, cancelPage{
		Title:   "Réservation annulée",
		Message: "Votre réservation a bien été annulée et les places ont été libérées.",
	})
}

func (h *BookingHandler) renderCancelPage(c *gin.Context, status int, page cancelPage) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := cancelPageTmpl.Execute(c.Writer, page); err != nil {
		_ = c.Error(err)
	}
}
