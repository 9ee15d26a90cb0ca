package estimate

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// DiscountType selects how DiscountValue is interpreted.
type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// Closet types.
const (
	ClosetWalkIn  = "walk-in"
	ClosetReachIn = "reach-in"
)

// Client is free-text contact information. No validation is applied.
type Client struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Closet holds the specs of one closet system.
type Closet struct {
	ClosetType     string  `json:"closetType"`
	LinearFeet     float64 `json:"linearFeet"`
	Depth          int     `json:"depth"`
	Height         float64 `json:"height"`
	Material       string  `json:"material"`
	HardwareFinish string  `json:"hardwareFinish"`
	Mounting       string  `json:"mounting"`
}

// AddonSelection is the per-room state of one add-on. Quantity only counts
// toward totals while Enabled is true.
type AddonSelection struct {
	Enabled  bool    `json:"enabled"`
	Quantity float64 `json:"quantity"`
}

// Room is one priced closet unit within an estimate.
type Room struct {
	Name   string                    `json:"name"`
	Closet Closet                    `json:"closet"`
	Addons map[string]AddonSelection `json:"addons"`
	Notes  string                    `json:"notes"`
}

// Estimate is the full quote document being edited.
type Estimate struct {
	Client        Client       `json:"client"`
	Rooms         []Room       `json:"rooms"`
	TaxRate       float64      `json:"taxRate"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue float64      `json:"discountValue"`
	Revision      int          `json:"revision"`
	Notes         string       `json:"notes"`
	QuoteNumber   string       `json:"quoteNumber"`
	Date          string       `json:"date"`
}

// NewRoom returns a room with catalog defaults.
func NewRoom() Room {
	return Room{
		Closet: Closet{
			ClosetType:     ClosetWalkIn,
			LinearFeet:     0,
			Depth:          16,
			Height:         96,
			Material:       "white",
			HardwareFinish: "black",
			Mounting:       "floor",
		},
		Addons: map[string]AddonSelection{},
	}
}

// New returns a fresh estimate with one default room, a quote number derived
// from now, and today's date.
func New(now time.Time) *Estimate {
	return &Estimate{
		Rooms:        []Room{NewRoom()},
		DiscountType: DiscountPercent,
		QuoteNumber:  QuoteNumberAt(now, ""),
		Date:         now.Format("2006-01-02"),
	}
}

// QuoteNumberAt derives a quote number from the wall clock, to the minute,
// with up to three client initials appended. There is no randomness and no
// collision check: two estimates created within the same minute share a code.
func QuoteNumberAt(t time.Time, clientName string) string {
	code := t.Format("200601021504")
	initials := clientInitials(clientName)
	if initials == "" {
		return code
	}
	return code + "-" + initials
}

func clientInitials(name string) string {
	initials := make([]rune, 0, 3)
	for _, part := range strings.Fields(name) {
		first := []rune(part)[0]
		initials = append(initials, unicode.ToUpper(first))
		if len(initials) == 3 {
			break
		}
	}
	return string(initials)
}

// ParseNonNegativeOrZero parses a numeric form value, coercing parse failures
// and negative values to 0. Invalid numeric input is never an error here.
func ParseNonNegativeOrZero(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// ParseDiscountType maps a raw form value onto a discount type, defaulting
// unknown values to percent.
func ParseDiscountType(raw string) DiscountType {
	if DiscountType(raw) == DiscountFixed {
		return DiscountFixed
	}
	return DiscountPercent
}

// Clone deep-copies the estimate so callers can price, render, or persist a
// snapshot without holding the session lock.
func (e *Estimate) Clone() *Estimate {
	out := *e
	out.Rooms = make([]Room, len(e.Rooms))
	for i, room := range e.Rooms {
		copied := room
		copied.Addons = make(map[string]AddonSelection, len(room.Addons))
		for key, sel := range room.Addons {
			copied.Addons[key] = sel
		}
		out.Rooms[i] = copied
	}
	return &out
}
