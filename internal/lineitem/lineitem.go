// Package lineitem renders a room's specs as the textual line item used by
// the quote document. It does no layout or pagination.
package lineitem

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/desirecabinets/estimator/internal/catalog"
	"github.com/desirecabinets/estimator/internal/estimate"
)

// Description is the formatted line item for one room.
type Description struct {
	Title   string
	Details []string
}

// Describe formats a room. The detail lines are in fixed order: dimensions,
// material, hardware, one line per enabled add-on, then the trailing
// installation line.
func Describe(room estimate.Room, cat *catalog.Catalog) Description {
	title := closetTypeLabel(room.Closet.ClosetType)
	if name := strings.TrimSpace(room.Name); name != "" {
		title = name + " - " + title
	}

	details := []string{
		fmt.Sprintf(`~%s LF x %d"D x %s"H, %s`,
			formatQty(room.Closet.LinearFeet),
			room.Closet.Depth,
			formatQty(room.Closet.Height),
			strings.ToLower(cat.MountingName(room.Closet.Mounting))),
		fmt.Sprintf(`3/4" %s melamine frameless cabinets, plain doors/drawers`,
			cat.MaterialName(room.Closet.Material)),
		fmt.Sprintf("%s exposed hardware, full extension drawer slides",
			cat.HardwareName(room.Closet.HardwareFinish)),
	}

	for _, key := range activeAddonKeys(room) {
		addon := cat.Addons[key]
		name := addon.Name
		if name == "" {
			name = key
		}
		unit := addon.Unit
		if unit == "" {
			unit = "each"
		}
		details = append(details, fmt.Sprintf("%s (%s %s)",
			name, formatQty(room.Addons[key].Quantity), unit))
	}

	details = append(details, "Delivery & installation included.")

	return Description{Title: title, Details: details}
}

func activeAddonKeys(room estimate.Room) []string {
	keys := make([]string, 0, len(room.Addons))
	for key, sel := range room.Addons {
		if sel.Enabled && sel.Quantity > 0 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func closetTypeLabel(closetType string) string {
	if closetType == estimate.ClosetReachIn {
		return "Reach-In Closet"
	}
	return "Walk-In Closet"
}

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
