package cache

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vansh1703/cars/internal/domain"
)

func TestDecodePayloadTreatsCorruptEntryAsMiss(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"truncated json", []byte(`{"stats":{"total_cars":5`)},
		{"wrong shape", []byte(`"just a string"`)},
		{"empty entry", nil},
		{"binary garbage", []byte{0xff, 0x00, 0x9b}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, ok := decodePayload(tt.raw)
			assert.Nil(t, payload)
			assert.False(t, ok, "an unreadable entry must read as a miss")
		})
	}
}

func TestDecodePayloadRoundTrip(t *testing.T) {
	stored := &domain.DashboardPayload{
		Stats:       domain.InventoryStats{TotalCars: 12, SoldCars: 4, AvailableCars: 8},
		MonthlyData: []domain.MonthBucket{{Month: "Jan", Revenue: 100, Count: 1}},
		YearRevenue: 100,
	}
	raw, err := json.Marshal(stored)
	require.NoError(t, err)

	payload, ok := decodePayload(raw)
	require.True(t, ok)
	assert.Equal(t, stored, payload)
}
