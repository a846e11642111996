//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"tipi-reserve/internal/handler/api"
	resdto "tipi-reserve/internal/handler/dto/response"
	"tipi-reserve/internal/usecase/commands"
	"tipi-reserve/internal/usecase/queries"
	"tipi-reserve/tests/common/builder"
	"tipi-reserve/tests/common/httptest"
	commandsmock "tipi-reserve/tests/mock/commands"
	queriesmock "tipi-reserve/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAdminCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/admin/reservations", s.handler.ListBookings)
	s.router.GET("/admin/reservations/export", s.handler.ExportCSV)
	s.router.PATCH("/admin/reservations/:id", s.handler.PatchBooking)
	s.router.DELETE("/admin/reservations/:id", s.handler.CancelBooking)
	s.router.GET("/admin/purge-cancelled", s.handler.PurgePreview)
	s.router.POST("/admin/purge-cancelled", s.handler.PurgeExecute)
	s.router.POST("/admin/stock/recount", s.handler.RecountStock)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestListBookings() {
	s.Run("success: excludes cancelled by default", func() {
		views := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}
		s.mockQueries.EXPECT().List(gomock.Any(), false).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations", nil)

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(views[0].Code, response[0].Code)
	})

	s.Run("success: includes cancelled on request", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), true).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations?include_cancelled=true", nil)
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *AdminHandlerTestSuite) TestExportCSV() {
	s.Run("success: semicolon separated with BOM and French headers", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().BuildView(),
		}
		views[0].PaymentStatus = "paid"
		s.mockQueries.EXPECT().List(gomock.Any(), true).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations/export", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Type"), "text/csv")
		s.Contains(rec.Header().Get("Content-Disposition"), "reservations.csv")

		body := rec.Body.String()
		s.True(strings.HasPrefix(body, "\uFEFF"), "expected UTF-8 BOM prefix")

		lines := strings.Split(strings.TrimPrefix(body, "\uFEFF"), "\n")
		s.Equal("Réf;Nom;Email;Logement;Qte;Total CHF;Paiement;Date", strings.TrimRight(lines[0], "\r"))
		s.Contains(lines[1], "150826-01;Claire Dubois;claire@example.com")
		s.Contains(lines[1], ";Payé;")
	})
}

func (s *AdminHandlerTestSuite) TestPatchBooking() {
	id := uuid.New()
	url := "/admin/reservations/" + id.String()

	s.Run("success: sets payment status", func() {
		s.mockCommands.EXPECT().SetPaymentStatus(gomock.Any(), id, "paid").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"payment_status": "paid"})
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: cancelling via status field", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "cancelled"})
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: status can only move to cancelled", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "confirmed"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: empty patch", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: invalid payment status", func() {
		s.mockCommands.EXPECT().SetPaymentStatus(gomock.Any(), id, "refunded").
			Return(commands.ErrInvalidPaymentStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"payment_status": "refunded"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid payment status")
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/reservations/not-a-uuid", map[string]any{"payment_status": "paid"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *AdminHandlerTestSuite) TestCancelBooking() {
	id := uuid.New()

	s.Run("success: idempotent delete", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/reservations/"+id.String(), nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *AdminHandlerTestSuite) TestPurge() {
	s.Run("GET runs a dry run", func() {
		s.mockCommands.EXPECT().
			PurgeCancelled(gomock.Any(), commands.PurgeOptions{OlderThanDays: 30, DryRun: true}).
			Return(&commands.PurgeResult{DryRun: true, OlderThanDays: 30, TotalMatched: 4, SampleIDs: []string{"a", "b"}}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/purge-cancelled?older_than_days=30", nil)

		var response resdto.PurgeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.DryRun)
		s.Equal(4, response.TotalMatched)
		s.Equal(0, response.TotalDeleted)
	})

	s.Run("POST deletes", func() {
		s.mockCommands.EXPECT().
			PurgeCancelled(gomock.Any(), commands.PurgeOptions{OlderThanDays: 30}).
			Return(&commands.PurgeResult{OlderThanDays: 30, TotalMatched: 4, TotalDeleted: 4}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/purge-cancelled?older_than_days=30", nil)

		var response resdto.PurgeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.DryRun)
		s.Equal(4, response.TotalDeleted)
	})
}

func (s *AdminHandlerTestSuite) TestRecountStock() {
	s.Run("success: returns computed totals", func() {
		s.mockCommands.EXPECT().RecountStock(gomock.Any()).
			Return(map[string]int{"tipis-lit140": 5}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/stock/recount", nil)

		var response resdto.RecountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(5, response.ReservedUnits["tipis-lit140"])
	})
}
