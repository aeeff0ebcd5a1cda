//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"parking-system/internal/domain/parking"
	"parking-system/internal/handler/api"
	resdto "parking-system/internal/handler/dto/response"
	"parking-system/internal/pkg/config"
	"parking-system/internal/pkg/errs"
	"parking-system/tests/common/httptest"
	commandsmock "parking-system/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PoolHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPoolCommands
	cfg          config.Config
}

func (s *PoolHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.cfg = config.NewTestConfig()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPoolCommands(s.mockCtrl)
	handler := api.NewPoolHandler(s.mockCommands, s.cfg)

	s.router.POST("/admin/pool", handler.Initialize)
	s.router.DELETE("/admin/pool", handler.Reset)
}

func (s *PoolHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPoolHandlerSuite(t *testing.T) {
	suite.Run(t, new(PoolHandlerTestSuite))
}

func poolOf(cars, bikes int) []*parking.Spot {
	spots := make([]*parking.Spot, 0, cars+bikes)
	for i := 1; i <= cars+bikes; i++ {
		t := parking.TypeCar
		if i > cars {
			t = parking.TypeBike
		}
		spots = append(spots, parking.ReconstructSpot(int32(i), t, true))
	}
	return spots
}

func (s *PoolHandlerTestSuite) TestInitialize() {
	url := "/admin/pool"

	s.Run("success: empty body uses the configured size", func() {
		cars, bikes := s.cfg.Parking.CarSpots, s.cfg.Parking.BikeSpots
		s.mockCommands.EXPECT().Initialize(gomock.Any(), cars, bikes).Return(poolOf(cars, bikes), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.PoolResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Len(response.Spots, cars+bikes)
		s.Equal(parking.TypeCar, response.Spots[0].Type)
		s.Equal(parking.TypeBike, response.Spots[cars+bikes-1].Type)
	})

	s.Run("success: omitted count falls back to config", func() {
		s.mockCommands.EXPECT().Initialize(gomock.Any(), 5, s.cfg.Parking.BikeSpots).
			Return(poolOf(5, s.cfg.Parking.BikeSpots), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"cars": 5}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: zero is an explicit size", func() {
		s.mockCommands.EXPECT().Initialize(gomock.Any(), 0, 2).Return(poolOf(0, 2), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"cars": 0, "bikes": 2}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on negative size", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"cars": -1}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 when spots already exist", func() {
		s.mockCommands.EXPECT().Initialize(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.MarkWithMessage(errs.ErrPoolNotEmpty, "spot pool already holds 5 spots"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already holds")
	})

	s.Run("error: 400 when the usecase rejects the size", func() {
		s.mockCommands.EXPECT().Initialize(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.MarkWithMessage(errs.ErrInvalidPoolSize, "pool must hold at least one spot"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"cars": 0, "bikes": 0}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "at least one spot")
	})
}

func (s *PoolHandlerTestSuite) TestReset() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Reset(gomock.Any()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/pool", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 500 on store failure", func() {
		s.mockCommands.EXPECT().Reset(gomock.Any()).Return(errs.Mark(errs.New("truncate failed"), errs.ErrDatabase))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/pool", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
