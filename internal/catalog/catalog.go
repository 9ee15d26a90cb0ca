package catalog

import "sort"

// Material is a finish option. White is the base; others carry a per-linear-foot upcharge.
type Material struct {
	ID       string
	Name     string
	Upcharge float64
}

// Addon is an optional priced extra, quantified per room.
type Addon struct {
	Name  string
	Price float64
	Unit  string
}

// Option is a display-only choice with no price effect.
type Option struct {
	ID   string
	Name string
}

// Catalog holds the static pricing reference data. It is never mutated.
type Catalog struct {
	BaseSystem       map[int]float64
	Addons           map[string]Addon
	Materials        []Material
	HardwareFinishes []Option
	Mounting         []Option
	StandardIncludes []string
}

// Default is the current price list. Base system pricing per linear foot by
// depth includes melamine frameless cabinets, plain doors/drawers, slides,
// hardware, delivery and installation.
var Default = &Catalog{
	BaseSystem: map[int]float64{
		14: 200,
		16: 215,
		19: 225,
		24: 250,
	},
	Addons: map[string]Addon{
		"drawers":           {Name: "Drawers", Price: 75, Unit: "each"},
		"colorChangingLEDs": {Name: "LED Lighting", Price: 75, Unit: "per linear foot"},
		"shakerStyle":       {Name: "Shaker Style Doors/Drawers", Price: 75, Unit: "per door/drawer"},
		"laminatedTops":     {Name: `Laminated Tops (25" deep)`, Price: 50, Unit: "per linear foot"},
		"floatingShelves":   {Name: `Floating Shelves (3/4" thick, 12" deep)`, Price: 25, Unit: "per linear foot"},
		"hamper":            {Name: "Hamper", Price: 175, Unit: "each"},
		"mirror":            {Name: "Mirror", Price: 150, Unit: "each"},
		"doors":             {Name: "Doors", Price: 45, Unit: "each"},
		"ssTops":            {Name: `SS Tops (25" deep)`, Price: 100, Unit: "per linear foot"},
		"removalDisposal":   {Name: "Removal of Old System & Trash Disposal", Price: 150, Unit: "each"},
	},
	Materials: []Material{
		{ID: "white", Name: "White", Upcharge: 0},
		{ID: "pewter-pine", Name: "Pewter Pine", Upcharge: 29},
		{ID: "gray", Name: "Gray", Upcharge: 8},
		{ID: "sable-glow", Name: "Sable Glow", Upcharge: 19},
		{ID: "umbria-elme", Name: "Umbria Elme", Upcharge: 17},
		{ID: "coastland-oak", Name: "Coastland Oak", Upcharge: 21},
		{ID: "spring-blossom", Name: "Spring Blossom", Upcharge: 34},
		{ID: "black", Name: "Black", Upcharge: 0},
		{ID: "regal-cherry", Name: "Regal Cherry", Upcharge: 16},
		{ID: "maple", Name: "Maple", Upcharge: 9},
		{ID: "natural-oak", Name: "Natural Oak", Upcharge: 19},
		{ID: "moscato-elme", Name: "Moscato Elme", Upcharge: 15},
	},
	HardwareFinishes: []Option{
		{ID: "black", Name: "Black"},
		{ID: "gold", Name: "Gold"},
		{ID: "chrome", Name: "Chrome"},
		{ID: "brushed-nickel", Name: "Brushed Nickel"},
	},
	Mounting: []Option{
		{ID: "floor", Name: "Floor Mounted"},
		{ID: "wall", Name: "Wall Mounted"},
	},
	StandardIncludes: []string{
		`3/4" Melamine Frameless Cabinets`,
		"Plain Doors/Drawers",
		"Full Extension Drawer Slides",
		"Exposed Hardware",
		"Delivery & Installation",
	},
}

// PriceForDepth returns the base price per linear foot for a cabinet depth.
// Unknown depths price as 0; callers treat missing keys as a zero contribution.
func (c *Catalog) PriceForDepth(depth int) float64 {
	return c.BaseSystem[depth]
}

// UpchargeFor returns the per-linear-foot upcharge for a material id, 0 if unknown.
func (c *Catalog) UpchargeFor(materialID string) float64 {
	for _, m := range c.Materials {
		if m.ID == materialID {
			return m.Upcharge
		}
	}
	return 0
}

// AddonPrice returns the unit price for an add-on key, 0 if unknown.
func (c *Catalog) AddonPrice(key string) float64 {
	return c.Addons[key].Price
}

// MaterialName returns the display name for a material id, defaulting to White.
func (c *Catalog) MaterialName(materialID string) string {
	for _, m := range c.Materials {
		if m.ID == materialID {
			return m.Name
		}
	}
	return "White"
}

// HardwareName returns the display name for a hardware finish id, defaulting to Black.
func (c *Catalog) HardwareName(finishID string) string {
	for _, o := range c.HardwareFinishes {
		if o.ID == finishID {
			return o.Name
		}
	}
	return "Black"
}

// MountingName returns the display name for a mounting id, defaulting to Floor Mounted.
func (c *Catalog) MountingName(mountingID string) string {
	for _, o := range c.Mounting {
		if o.ID == mountingID {
			return o.Name
		}
	}
	return "Floor Mounted"
}

// Depths returns the priced depths in ascending order.
func (c *Catalog) Depths() []int {
	depths := make([]int, 0, len(c.BaseSystem))
	for d := range c.BaseSystem {
		depths = append(depths, d)
	}
	sort.Ints(depths)
	return depths
}
