package pricing

import (
	"math"
	"reflect"
	"testing"

	"github.com/desirecabinets/estimator/internal/catalog"
	"github.com/desirecabinets/estimator/internal/estimate"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func roomWith(linearFeet float64, depth int, material string) estimate.Room {
	room := estimate.NewRoom()
	room.Closet.LinearFeet = linearFeet
	room.Closet.Depth = depth
	room.Closet.Material = material
	return room
}

func TestCalculateRoom_BaseOnly(t *testing.T) {
	room := roomWith(10, 16, "white")

	breakdown := CalculateRoom(room, catalog.Default)

	nearlyEqual(t, "base", breakdown.Base, 2150)
	nearlyEqual(t, "materialUpcharge", breakdown.MaterialUpcharge, 0)
	nearlyEqual(t, "addons", breakdown.Addons, 0)
	nearlyEqual(t, "total", breakdown.Total, 2150)
}

func TestCalculateRoom_WithDrawers(t *testing.T) {
	room := roomWith(10, 16, "white")
	room.Addons["drawers"] = estimate.AddonSelection{Enabled: true, Quantity: 3}

	breakdown := CalculateRoom(room, catalog.Default)

	nearlyEqual(t, "addons", breakdown.Addons, 225)
	nearlyEqual(t, "total", breakdown.Total, 2375)
}

func TestCalculateRoom_MaterialUpcharge(t *testing.T) {
	room := roomWith(10, 16, "pewter-pine")

	breakdown := CalculateRoom(room, catalog.Default)

	nearlyEqual(t, "materialUpcharge", breakdown.MaterialUpcharge, 290)
	nearlyEqual(t, "total", breakdown.Total, 2440)
}

func TestCalculateRoom_DisabledOrZeroQuantityAddonsContributeNothing(t *testing.T) {
	room := roomWith(10, 16, "white")
	room.Addons["drawers"] = estimate.AddonSelection{Enabled: false, Quantity: 5}
	room.Addons["mirror"] = estimate.AddonSelection{Enabled: true, Quantity: 0}

	breakdown := CalculateRoom(room, catalog.Default)

	nearlyEqual(t, "addons", breakdown.Addons, 0)
	nearlyEqual(t, "total", breakdown.Total, 2150)
}

func TestCalculateRoom_UnknownCatalogKeysPriceAsZero(t *testing.T) {
	room := roomWith(10, 17, "not-a-material")
	room.Addons["not-an-addon"] = estimate.AddonSelection{Enabled: true, Quantity: 4}

	breakdown := CalculateRoom(room, catalog.Default)

	nearlyEqual(t, "base", breakdown.Base, 0)
	nearlyEqual(t, "materialUpcharge", breakdown.MaterialUpcharge, 0)
	nearlyEqual(t, "addons", breakdown.Addons, 0)
	nearlyEqual(t, "total", breakdown.Total, 0)
}

func TestCalculate_PercentDiscountThenTax(t *testing.T) {
	room := roomWith(10, 16, "white")
	room.Addons["drawers"] = estimate.AddonSelection{Enabled: true, Quantity: 3}
	est := &estimate.Estimate{
		Rooms:         []estimate.Room{room},
		DiscountType:  estimate.DiscountPercent,
		DiscountValue: 10,
		TaxRate:       7,
	}

	result := Calculate(est, catalog.Default)

	nearlyEqual(t, "subtotal", result.Totals.Subtotal, 2375)
	nearlyEqual(t, "discount", result.Totals.Discount, 237.5)
	nearlyEqual(t, "afterDiscount", result.Totals.AfterDiscount, 2137.5)
	nearlyEqual(t, "tax", result.Totals.Tax, 149.625)
	nearlyEqual(t, "total", result.Totals.Total, 2287.125)
}

func TestCalculate_TwoRoomsAggregateInOrder(t *testing.T) {
	est := &estimate.Estimate{
		Rooms: []estimate.Room{
			roomWith(5, 14, "white"),
			roomWith(2, 24, "white"),
		},
		DiscountType: estimate.DiscountPercent,
	}

	result := Calculate(est, catalog.Default)

	if len(result.Rooms) != 2 {
		t.Fatalf("expected 2 room breakdowns, got %d", len(result.Rooms))
	}
	nearlyEqual(t, "rooms[0].total", result.Rooms[0].Total, 1000)
	nearlyEqual(t, "rooms[1].total", result.Rooms[1].Total, 500)
	nearlyEqual(t, "subtotal", result.Totals.Subtotal, 1500)
	nearlyEqual(t, "total", result.Totals.Total, 1500)
}

func TestCalculate_FixedDiscountExceedingSubtotalIsNotClamped(t *testing.T) {
	est := &estimate.Estimate{
		Rooms:         []estimate.Room{roomWith(10, 16, "white")},
		DiscountType:  estimate.DiscountFixed,
		DiscountValue: 3000,
	}

	result := Calculate(est, catalog.Default)

	nearlyEqual(t, "discount", result.Totals.Discount, 3000)
	nearlyEqual(t, "afterDiscount", result.Totals.AfterDiscount, -850)
	nearlyEqual(t, "total", result.Totals.Total, -850)
}

func TestCalculate_Idempotent(t *testing.T) {
	room := roomWith(12, 19, "gray")
	room.Addons["hamper"] = estimate.AddonSelection{Enabled: true, Quantity: 1}
	est := &estimate.Estimate{
		Rooms:         []estimate.Room{room},
		DiscountType:  estimate.DiscountPercent,
		DiscountValue: 5,
		TaxRate:       6,
	}

	first := Calculate(est, catalog.Default)
	second := Calculate(est, catalog.Default)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("calculation is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
