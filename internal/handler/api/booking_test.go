//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"tipi-reserve/internal/domain/lodging"
	"tipi-reserve/internal/handler/api"
	resdto "tipi-reserve/internal/handler/dto/response"
	"tipi-reserve/internal/pkg/errs"
	"tipi-reserve/internal/usecase/commands"
	"tipi-reserve/tests/common/builder"
	"tipi-reserve/tests/common/httptest"
	commandsmock "tipi-reserve/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands)

	s.router.POST("/api/reservations", s.handler.Create)
	s.router.GET("/api/reservations/cancel", s.handler.CancelByToken)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/reservations"
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 with code, total and updated stock count", func() {
		expected := &commands.CreateBookingResult{
			ID:            uuid.New(),
			Code:          "150826-01",
			TotalPriceCHF: 400,
			ReservedUnits: 2,
		}
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(expected.Code, response.Code)
		s.Equal(expected.TotalPriceCHF, response.TotalPriceCHF)
		s.Equal(expected.ReservedUnits, response.ReservedUnits)
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"qty": "two"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 on validation failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
	})

	s.Run("error: 404 on unknown lodging", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrLodgingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Lodging not found")
	})

	s.Run("error: 409 with remaining units on insufficient stock", func() {
		err := errs.Mark(&lodging.InsufficientStockError{Remaining: 2}, commands.ErrInsufficientStock)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), `"remaining":2`)
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *BookingHandlerTestSuite) TestCancelByToken() {
	url := "/api/reservations/cancel?token=abc123"

	s.Run("success: renders the cancelled card", func() {
		s.mockCommands.EXPECT().CancelByToken(gomock.Any(), "abc123").
			Return(commands.CancelOutcomeCancelled, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Type"), "text/html")
		s.Contains(rec.Body.String(), "Réservation annulée")
	})

	s.Run("success: repeat renders the already-cancelled card", func() {
		s.mockCommands.EXPECT().CancelByToken(gomock.Any(), "abc123").
			Return(commands.CancelOutcomeAlreadyCancelled, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "déjà été annulée")
	})

	s.Run("error: unknown token renders the invalid-link card", func() {
		s.mockCommands.EXPECT().CancelByToken(gomock.Any(), "abc123").
			Return(commands.CancelOutcome(0), commands.ErrTokenInvalid).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		s.Equal(http.StatusNotFound, rec.Code)
		s.Contains(rec.Body.String(), "Lien invalide")
	})
}
