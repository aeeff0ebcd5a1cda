//go:build e2e

package parking_test

import (
	"net/http"
	"testing"
	"time"

	"parking-system/internal/domain/parking"
	reqdto "parking-system/internal/handler/dto/request"
	resdto "parking-system/internal/handler/dto/response"
	"parking-system/tests/common/dbtest"
	"parking-system/tests/common/httptest"
	"parking-system/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	poolURL    = "/api/admin/pool"
	entriesURL = "/api/parking/entries"
	exitsURL   = "/api/parking/exits"
	spotsURL   = "/api/spots"
	nextURL    = "/api/spots/next"
)

type parkingSuite struct {
	e2e.SharedSuite
}

func TestParkingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(parkingSuite))
}

func (s *parkingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	dbtest.CreateSpots(s.T(), s.DB, s.Config.Parking.CarSpots, s.Config.Parking.BikeSpots)
}

func (s *parkingSuite) enter(token, reg string, t parking.ParkingType) resdto.TicketResponse {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, entriesURL,
		reqdto.EntryRequest{Registration: reg, Type: t.String()}, token)

	var res resdto.TicketResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return res
}

func (s *parkingSuite) exit(token, reg string) resdto.TicketResponse {
	s.T().Helper()
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, exitsURL,
		reqdto.ExitRequest{Registration: reg}, token)

	var res resdto.TicketResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return res
}

func (s *parkingSuite) TestEntry() {
	s.Run("最小番号の空きスポットを割り当てる", func() {
		token := s.OperatorToken()

		first := s.enter(token, "ABC123", parking.TypeCar)
		s.Equal(int32(1), first.SpotID)
		s.True(first.Open)
		s.True(e2e.E2EStartTime.Equal(first.InTime))
		s.False(dbtest.SpotAvailable(s.T(), s.DB, 1))

		second := s.enter(token, "XYZ789", parking.TypeCar)
		s.Equal(int32(2), second.SpotID)

		bike := s.enter(token, "MOTO1", parking.TypeBike)
		s.Equal(int32(s.Config.Parking.CarSpots+1), bike.SpotID)
	})

	s.Run("満車なら409を返しチケットを作らない", func() {
		token := s.OperatorToken()
		for i, reg := range []string{"CAR01", "CAR02", "CAR03"} {
			res := s.enter(token, reg, parking.TypeCar)
			s.Equal(int32(i+1), res.SpotID)
		}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, entriesURL,
			reqdto.EntryRequest{Registration: "CAR04", Type: "CAR"}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "no available")
		s.Zero(dbtest.CountTickets(s.T(), s.DB, "CAR04"))
	})

	s.Run("不正な登録番号は400を返す", func() {
		token := s.OperatorToken()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, entriesURL,
			reqdto.EntryRequest{Registration: "A", Type: "CAR"}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
		s.True(dbtest.SpotAvailable(s.T(), s.DB, 1))
	})

	s.Run("車種の欠落と不正は登録番号の後に検査する", func() {
		token := s.OperatorToken()

		cases := []struct {
			name string
			body map[string]any
			msg  string
		}{
			{name: "車種なし", body: map[string]any{"registration": "ABC123"}, msg: "parking type is required"},
			{name: "空白の車種", body: map[string]any{"registration": "ABC123", "type": "  "}, msg: "parking type is required"},
			{name: "未対応の車種", body: map[string]any{"registration": "ABC123", "type": "TRUCK"}, msg: "unsupported parking type"},
			{name: "登録番号も車種も不正", body: map[string]any{"registration": "A", "type": "TRUCK"}, msg: "between 2 and 10"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, entriesURL, tc.body, token)
				httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, tc.msg)
			})
		}
		s.Zero(dbtest.CountTickets(s.T(), s.DB, "ABC123"))
	})

	s.Run("未認証は401を返す", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, entriesURL,
			reqdto.EntryRequest{Registration: "ABC123", Type: "CAR"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})
}

func (s *parkingSuite) TestExit() {
	s.Run("料金を計算しスポットを解放する", func() {
		token := s.OperatorToken()
		s.enter(token, "ABC123", parking.TypeCar)

		s.Clock.Add(90 * time.Minute)
		res := s.exit(token, "ABC123")

		s.False(res.Open)
		s.Require().NotNil(res.OutTime)
		s.True(e2e.E2EStartTime.Add(90 * time.Minute).Equal(*res.OutTime))
		s.InDelta(parking.CarRatePerHour, res.Price, 1e-9)
		s.True(dbtest.SpotAvailable(s.T(), s.DB, 1))
	})

	s.Run("30分以内の駐車は無料", func() {
		token := s.OperatorToken()
		s.enter(token, "MOTO1", parking.TypeBike)

		s.Clock.Add(25 * time.Minute)
		res := s.exit(token, "MOTO1")
		s.Zero(res.Price)
	})

	s.Run("解放したスポットを再利用する", func() {
		token := s.OperatorToken()
		s.enter(token, "ABC123", parking.TypeCar)
		s.enter(token, "XYZ789", parking.TypeCar)

		s.Clock.Add(2 * time.Hour)
		s.exit(token, "ABC123")

		res := s.enter(token, "NEW001", parking.TypeCar)
		s.Equal(int32(1), res.SpotID)
	})

	s.Run("同じ分内の出庫は422を返しチケットは開いたまま", func() {
		token := s.OperatorToken()
		s.enter(token, "ABC123", parking.TypeCar)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, exitsURL,
			reqdto.ExitRequest{Registration: "ABC123"}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "fare calculation failed")
		s.False(dbtest.SpotAvailable(s.T(), s.DB, 1))
	})

	s.Run("出庫済みチケットは409を返す", func() {
		token := s.OperatorToken()
		s.enter(token, "ABC123", parking.TypeCar)
		s.Clock.Add(time.Hour)
		s.exit(token, "ABC123")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, exitsURL,
			reqdto.ExitRequest{Registration: "ABC123"}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
	})

	s.Run("チケットのない車両は404を返す", func() {
		token := s.OperatorToken()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, exitsURL,
			reqdto.ExitRequest{Registration: "GHOST1"}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "GHOST1")
	})
}

func (s *parkingSuite) TestSpots() {
	s.Run("スポット一覧と占有状況を返す", func() {
		token := s.OperatorToken()
		s.enter(token, "ABC123", parking.TypeCar)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, spotsURL, nil, token)
		var res resdto.SpotListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)

		s.Len(res.Spots, s.Config.Parking.CarSpots+s.Config.Parking.BikeSpots)
		s.Equal([]resdto.OccupancyResponse{
			{Type: parking.TypeCar, Total: s.Config.Parking.CarSpots, Available: s.Config.Parking.CarSpots - 1},
			{Type: parking.TypeBike, Total: s.Config.Parking.BikeSpots, Available: s.Config.Parking.BikeSpots},
		}, res.Occupancy)
	})

	s.Run("入庫がなければ次の空きスポットは何度聞いても同じ", func() {
		token := s.OperatorToken()

		var first, second resdto.SpotResponse
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, nextURL+"?type=CAR", nil, token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &first)
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, nextURL+"?type=CAR", nil, token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)

		s.Equal(int32(1), first.ID)
		s.Equal(first.ID, second.ID)
		s.True(dbtest.SpotAvailable(s.T(), s.DB, first.ID))
	})

	s.Run("次の空きスポットを返し満車なら404", func() {
		token := s.OperatorToken()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, nextURL+"?type=BIKE", nil, token)
		var spot resdto.SpotResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &spot)
		s.Equal(int32(s.Config.Parking.CarSpots+1), spot.ID)

		s.enter(token, "MOTO1", parking.TypeBike)
		s.enter(token, "MOTO2", parking.TypeBike)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, nextURL+"?type=BIKE", nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})
}

func (s *parkingSuite) TestTickets() {
	s.Run("最新チケットと来場回数を返す", func() {
		token := s.OperatorToken()
		s.enter(token, "ABC123", parking.TypeCar)
		s.Clock.Add(time.Hour)
		s.exit(token, "ABC123")
		s.Clock.Add(time.Hour)
		latest := s.enter(token, "ABC123", parking.TypeCar)

		s.Clock.Add(30 * time.Minute)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/vehicles/ABC123/ticket", nil, token)
		var res resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)

		s.Equal(latest.ID, res.ID)
		s.Equal(2, res.Visits)
		s.True(res.Open)
		s.InDelta(0.5, res.DurationHours, 1e-9)
	})

	s.Run("QRコードをPNGで返す", func() {
		token := s.OperatorToken()
		s.enter(token, "ABC123", parking.TypeCar)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/vehicles/ABC123/ticket/qr", nil, token)
		httptest.AssertPNGResponse(s.T(), w)
	})
}

func (s *parkingSuite) TestPool() {
	s.Run("リセット後に設定サイズで再初期化できる", func() {
		token := s.OperatorToken()
		s.enter(token, "ABC123", parking.TypeCar)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, poolURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, poolURL, nil, token)
		s.Equal(http.StatusNoContent, w.Code)
		s.Zero(dbtest.CountTickets(s.T(), s.DB, "ABC123"))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, poolURL, map[string]any{"cars": 1, "bikes": 1}, token)
		var res resdto.PoolResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Equal([]resdto.SpotResponse{
			{ID: 1, Type: parking.TypeCar, Available: true},
			{ID: 2, Type: parking.TypeBike, Available: true},
		}, res.Spots)
	})
}
