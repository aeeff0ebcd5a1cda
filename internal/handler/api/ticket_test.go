//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"parking-system/internal/domain/parking"
	"parking-system/internal/handler/api"
	resdto "parking-system/internal/handler/dto/response"
	"parking-system/internal/pkg/errs"
	"parking-system/internal/usecase/queries"
	"parking-system/tests/common/httptest"
	queriesmock "parking-system/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TicketHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockTicketQueries
}

func (s *TicketHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockTicketQueries(s.mockCtrl)
	handler := api.NewTicketHandler(s.mockQueries)

	s.router.GET("/vehicles/:registration/ticket", handler.Latest)
	s.router.GET("/vehicles/:registration/ticket/qr", handler.QR)
}

func (s *TicketHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTicketHandlerSuite(t *testing.T) {
	suite.Run(t, new(TicketHandlerTestSuite))
}

func (s *TicketHandlerTestSuite) TestLatest() {
	inTime := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	s.Run("success: returns the ticket with visit count", func() {
		s.mockQueries.EXPECT().LatestTicket(gomock.Any(), "ABC123").Return(&queries.TicketView{
			ID:            7,
			SpotID:        3,
			Type:          parking.TypeCar,
			Registration:  "ABC123",
			InTime:        inTime,
			Open:          true,
			DurationHours: 2,
			Visits:        4,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vehicles/ABC123/ticket", nil, "")

		var response resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(7), response.ID)
		s.Equal(int32(3), response.SpotID)
		s.Equal(4, response.Visits)
		s.True(response.Open)
		s.InDelta(2.0, response.DurationHours, 1e-9)
		s.True(inTime.Equal(response.InTime))
	})

	s.Run("error: 404 when the vehicle never parked", func() {
		s.mockQueries.EXPECT().LatestTicket(gomock.Any(), "NOPE").
			Return(nil, errs.MarkWithMessage(errs.ErrTicketNotFound, "no ticket found for vehicle registration number: NOPE"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vehicles/NOPE/ticket", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "NOPE")
	})
}

func (s *TicketHandlerTestSuite) TestQR() {
	s.Run("success: returns a PNG body", func() {
		png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00}
		s.mockQueries.EXPECT().TicketQR(gomock.Any(), "ABC123").Return(png, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vehicles/ABC123/ticket/qr", nil, "")

		httptest.AssertPNGResponse(s.T(), rec)
		s.Equal(png, rec.Body.Bytes())
	})

	s.Run("error: 404 when the vehicle never parked", func() {
		s.mockQueries.EXPECT().TicketQR(gomock.Any(), "NOPE").
			Return(nil, errs.MarkWithMessage(errs.ErrTicketNotFound, "no ticket found for vehicle registration number: NOPE"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vehicles/NOPE/ticket/qr", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "no ticket found")
	})
}
