package estimate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomDefaults(t *testing.T) {
	room := NewRoom()

	assert.Equal(t, ClosetWalkIn, room.Closet.ClosetType)
	assert.Equal(t, 0.0, room.Closet.LinearFeet)
	assert.Equal(t, 16, room.Closet.Depth)
	assert.Equal(t, 96.0, room.Closet.Height)
	assert.Equal(t, "white", room.Closet.Material)
	assert.Equal(t, "black", room.Closet.HardwareFinish)
	assert.Equal(t, "floor", room.Closet.Mounting)
	assert.NotNil(t, room.Addons)
	assert.Empty(t, room.Addons)
}

func TestNewEstimate(t *testing.T) {
	at := time.Date(2026, 8, 30, 15, 4, 22, 0, time.UTC)
	est := New(at)

	require.Len(t, est.Rooms, 1)
	assert.Equal(t, DiscountPercent, est.DiscountType)
	assert.Equal(t, "202608301504", est.QuoteNumber)
	assert.Equal(t, "2026-08-30", est.Date)
	assert.Equal(t, 0, est.Revision)
}

func TestQuoteNumberAt(t *testing.T) {
	at := time.Date(2026, 8, 30, 15, 4, 0, 0, time.UTC)

	assert.Equal(t, "202608301504", QuoteNumberAt(at, ""))
	assert.Equal(t, "202608301504-JD", QuoteNumberAt(at, "John Doe"))
	assert.Equal(t, "202608301504-JMD", QuoteNumberAt(at, "john maynard doe junior"))
	assert.Equal(t, "202608301504-J", QuoteNumberAt(at, "  john  "))

	// Seconds do not change the code: anything within the same minute collides.
	later := at.Add(45 * time.Second)
	assert.Equal(t, QuoteNumberAt(at, "John Doe"), QuoteNumberAt(later, "John Doe"))
}

func TestParseNonNegativeOrZero(t *testing.T) {
	assert.Equal(t, 12.5, ParseNonNegativeOrZero("12.5"))
	assert.Equal(t, 7.0, ParseNonNegativeOrZero(" 7 "))
	assert.Equal(t, 0.0, ParseNonNegativeOrZero(""))
	assert.Equal(t, 0.0, ParseNonNegativeOrZero("abc"))
	assert.Equal(t, 0.0, ParseNonNegativeOrZero("-3"))
}

func TestParseDiscountType(t *testing.T) {
	assert.Equal(t, DiscountFixed, ParseDiscountType("fixed"))
	assert.Equal(t, DiscountPercent, ParseDiscountType("percent"))
	assert.Equal(t, DiscountPercent, ParseDiscountType("coupon"))
	assert.Equal(t, DiscountPercent, ParseDiscountType(""))
}

func TestCloneIsDeep(t *testing.T) {
	est := New(time.Now())
	est.Rooms[0].Addons["drawers"] = AddonSelection{Enabled: true, Quantity: 2}

	clone := est.Clone()
	clone.Rooms[0].Name = "Primary"
	clone.Rooms[0].Addons["drawers"] = AddonSelection{Enabled: false, Quantity: 9}
	clone.Rooms = append(clone.Rooms, NewRoom())

	assert.Equal(t, "", est.Rooms[0].Name)
	assert.Equal(t, AddonSelection{Enabled: true, Quantity: 2}, est.Rooms[0].Addons["drawers"])
	assert.Len(t, est.Rooms, 1)
}
