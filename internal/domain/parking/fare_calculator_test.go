//go:build unit

package parking_test

import (
	"testing"
	"time"

	"parking-system/internal/domain/parking"
	"parking-system/internal/pkg/clock"
	"parking-system/internal/pkg/errs"
	"parking-system/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestCalculateFare(t *testing.T) {
	calc := parking.NewDefaultFareCalculator(clock.NewMockClock(baseTime.Add(24 * time.Hour)))

	tests := []struct {
		name     string
		typ      parking.ParkingType
		stay     time.Duration
		discount bool
		want     float64
	}{
		{name: "車 90分 割引なし", typ: parking.TypeCar, stay: 90 * time.Minute, want: 1.0},
		{name: "車 90分 割引あり", typ: parking.TypeCar, stay: 90 * time.Minute, discount: true, want: 0.95},
		{name: "バイク 29分は無料", typ: parking.TypeBike, stay: 29 * time.Minute, want: 0},
		{name: "車 30分ちょうどは無料", typ: parking.TypeCar, stay: 30 * time.Minute, want: 0},
		{name: "車 30分 割引ありでも無料", typ: parking.TypeCar, stay: 30 * time.Minute, discount: true, want: 0},
		{name: "車 31分は1時間分", typ: parking.TypeCar, stay: 31 * time.Minute, want: 1.0},
		{name: "車 1分は無料", typ: parking.TypeCar, stay: time.Minute, want: 0},
		{name: "車 91分は2時間分", typ: parking.TypeCar, stay: 91 * time.Minute, want: 2.0},
		{name: "バイク 90分", typ: parking.TypeBike, stay: 90 * time.Minute, want: 0.5},
		{name: "バイク 90分 割引あり", typ: parking.TypeBike, stay: 90 * time.Minute, discount: true, want: 0.475},
		{name: "車 24時間", typ: parking.TypeCar, stay: 24 * time.Hour, want: 24.0},
		{name: "端数秒は切り捨て", typ: parking.TypeCar, stay: 30*time.Minute + 59*time.Second, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := builder.NewTicketBuilder().
				WithType(tt.typ).
				WithInTime(baseTime).
				WithOutTime(baseTime.Add(tt.stay)).
				BuildReconstructed()

			fare, err := calc.CalculateFare(ticket, tt.discount)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, fare, 1e-9)
		})
	}
}

func TestCalculateFare_Errors(t *testing.T) {
	now := baseTime.Add(time.Hour)
	calc := parking.NewDefaultFareCalculator(clock.NewMockClock(now))

	tests := []struct {
		name  string
		build func(*builder.TicketBuilder)
		errIs error
	}{
		{
			name:  "入庫時刻なし",
			build: func(b *builder.TicketBuilder) { b.WithInTime(time.Time{}).WithOutTime(baseTime) },
			errIs: parking.ErrInvalidStay,
		},
		{
			name:  "出庫時刻なし",
			build: func(b *builder.TicketBuilder) { b.WithInTime(baseTime).WithoutOutTime() },
			errIs: parking.ErrInvalidStay,
		},
		{
			name:  "入庫時刻が未来",
			build: func(b *builder.TicketBuilder) { b.WithInTime(now.Add(time.Minute)).WithOutTime(now.Add(time.Hour)) },
			errIs: parking.ErrInvalidStay,
		},
		{
			name:  "出庫が入庫より前",
			build: func(b *builder.TicketBuilder) { b.WithInTime(baseTime).WithOutTime(baseTime.Add(-time.Minute)) },
			errIs: parking.ErrOutBeforeIn,
		},
		{
			name:  "同時刻は不正な滞在時間",
			build: func(b *builder.TicketBuilder) { b.WithInTime(baseTime).WithOutTime(baseTime) },
			errIs: parking.ErrInvalidDuration,
		},
		{
			name:  "1分未満は不正な滞在時間",
			build: func(b *builder.TicketBuilder) { b.WithInTime(baseTime).WithOutTime(baseTime.Add(59 * time.Second)) },
			errIs: parking.ErrInvalidDuration,
		},
		{
			name:  "未対応の駐車種別",
			build: func(b *builder.TicketBuilder) { b.WithType("TRUCK").WithInTime(baseTime).WithOutTime(baseTime.Add(time.Hour)) },
			errIs: parking.ErrUnsupportedParkingType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewTicketBuilder()
			tt.build(b)

			fare, err := calc.CalculateFare(b.BuildReconstructed(), false)
			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.errIs))
			assert.Zero(t, fare)
		})
	}
}

func TestValidateStay(t *testing.T) {
	calc := parking.NewDefaultFareCalculator(clock.NewMockClock(baseTime.Add(time.Hour)))

	t.Run("未設定の時刻はnot setと表示", func(t *testing.T) {
		ticket := builder.NewTicketBuilder().WithInTime(baseTime).WithoutOutTime().BuildReconstructed()

		err := calc.ValidateStay(ticket)
		require.True(t, errs.Is(err, parking.ErrInvalidStay))
		assert.Contains(t, err.Error(), "Out-time: not set")
		assert.Contains(t, err.Error(), baseTime.Format(time.RFC3339))
	})

	t.Run("両方未設定", func(t *testing.T) {
		ticket := builder.NewTicketBuilder().WithInTime(time.Time{}).WithoutOutTime().BuildReconstructed()

		err := calc.ValidateStay(ticket)
		require.True(t, errs.Is(err, parking.ErrInvalidStay))
		assert.Contains(t, err.Error(), "In-time: not set, Out-time: not set")
	})

	t.Run("nilチケット", func(t *testing.T) {
		assert.True(t, errs.Is(calc.ValidateStay(nil), parking.ErrInvalidStay))
	})

	t.Run("同時刻は検証OK", func(t *testing.T) {
		ticket := builder.NewTicketBuilder().WithInTime(baseTime).WithOutTime(baseTime).BuildReconstructed()
		assert.NoError(t, calc.ValidateStay(ticket))
	})

	t.Run("未来の入庫は出庫順序より先に判定", func(t *testing.T) {
		future := baseTime.Add(2 * time.Hour)
		ticket := builder.NewTicketBuilder().WithInTime(future).WithOutTime(baseTime).BuildReconstructed()

		err := calc.ValidateStay(ticket)
		assert.True(t, errs.Is(err, parking.ErrInvalidStay))
		assert.False(t, errs.Is(err, parking.ErrOutBeforeIn))
	})
}

func TestRatePerHour(t *testing.T) {
	rate, err := parking.RatePerHour(parking.TypeCar)
	require.NoError(t, err)
	assert.Equal(t, 1.0, rate)

	rate, err = parking.RatePerHour(parking.TypeBike)
	require.NoError(t, err)
	assert.Equal(t, 0.5, rate)

	_, err = parking.RatePerHour("")
	assert.True(t, errs.Is(err, parking.ErrUnsupportedParkingType))
}
