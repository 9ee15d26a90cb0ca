package pricing

import (
	"github.com/desirecabinets/estimator/internal/catalog"
	"github.com/desirecabinets/estimator/internal/estimate"
)

// RoomBreakdown contains the line-item values for one room.
type RoomBreakdown struct {
	Base             float64 `json:"base"`
	MaterialUpcharge float64 `json:"materialUpcharge"`
	Addons           float64 `json:"addons"`
	Total            float64 `json:"total"`
}

// Totals contains roll-up values across all rooms.
type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	Discount      float64 `json:"discount"`
	AfterDiscount float64 `json:"afterDiscount"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
}

// Result groups the full pricing output. Rooms is order-aligned with the
// estimate's room list.
type Result struct {
	Rooms  []RoomBreakdown `json:"rooms"`
	Totals Totals          `json:"totals"`
}

// CalculateRoom prices a single room against the catalog. Unknown depths,
// materials, and add-on keys contribute 0 rather than failing.
func CalculateRoom(room estimate.Room, cat *catalog.Catalog) RoomBreakdown {
	base := room.Closet.LinearFeet * cat.PriceForDepth(room.Closet.Depth)
	upcharge := room.Closet.LinearFeet * cat.UpchargeFor(room.Closet.Material)

	addons := 0.0
	for key, sel := range room.Addons {
		if sel.Enabled && sel.Quantity > 0 {
			addons += sel.Quantity * cat.AddonPrice(key)
		}
	}

	return RoomBreakdown{
		Base:             base,
		MaterialUpcharge: upcharge,
		Addons:           addons,
		Total:            base + upcharge + addons,
	}
}

// Calculate prices the whole estimate. The discount is a flat subtraction
// with no floor at zero: a discount larger than the subtotal drives the
// total negative.
func Calculate(est *estimate.Estimate, cat *catalog.Catalog) Result {
	rooms := make([]RoomBreakdown, len(est.Rooms))
	subtotal := 0.0
	for i, room := range est.Rooms {
		rooms[i] = CalculateRoom(room, cat)
		subtotal += rooms[i].Total
	}

	discount := est.DiscountValue
	if est.DiscountType == estimate.DiscountPercent {
		discount = subtotal * (est.DiscountValue / 100.0)
	}

	afterDiscount := subtotal - discount
	tax := afterDiscount * (est.TaxRate / 100.0)

	return Result{
		Rooms: rooms,
		Totals: Totals{
			Subtotal:      subtotal,
			Discount:      discount,
			AfterDiscount: afterDiscount,
			Tax:           tax,
			Total:         afterDiscount + tax,
		},
	}
}
