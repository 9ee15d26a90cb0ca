package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceForDepth(t *testing.T) {
	assert.Equal(t, 200.0, Default.PriceForDepth(14))
	assert.Equal(t, 215.0, Default.PriceForDepth(16))
	assert.Equal(t, 225.0, Default.PriceForDepth(19))
	assert.Equal(t, 250.0, Default.PriceForDepth(24))
	assert.Equal(t, 0.0, Default.PriceForDepth(17))
}

func TestUpchargeFor(t *testing.T) {
	assert.Equal(t, 0.0, Default.UpchargeFor("white"))
	assert.Equal(t, 29.0, Default.UpchargeFor("pewter-pine"))
	assert.Equal(t, 0.0, Default.UpchargeFor("no-such-material"))
}

func TestAddonPrice(t *testing.T) {
	assert.Equal(t, 75.0, Default.AddonPrice("drawers"))
	assert.Equal(t, 175.0, Default.AddonPrice("hamper"))
	assert.Equal(t, 0.0, Default.AddonPrice("no-such-addon"))
}

func TestDisplayNameFallbacks(t *testing.T) {
	assert.Equal(t, "Pewter Pine", Default.MaterialName("pewter-pine"))
	assert.Equal(t, "White", Default.MaterialName("no-such-material"))
	assert.Equal(t, "Gold", Default.HardwareName("gold"))
	assert.Equal(t, "Black", Default.HardwareName("no-such-finish"))
	assert.Equal(t, "Wall Mounted", Default.MountingName("wall"))
	assert.Equal(t, "Floor Mounted", Default.MountingName("no-such-mounting"))
}

func TestDepthsSortedAscending(t *testing.T) {
	assert.Equal(t, []int{14, 16, 19, 24}, Default.Depths())
}
