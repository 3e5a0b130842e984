package archetype

func init() {
	reg = buildRegistry(seedArchetypes())
}

// seedArchetypes returns the 12 built-in skin archetypes.
// Definition order doubles as tie-break priority (see PriorityRank).
func seedArchetypes() []Archetype {
	return []Archetype{
		{
			ID:      "balanced-glow",
			Name:    "Balanced Glow",
			Emoji:   "🌟",
			Summary: "Comfortable, even skin with no dominant concern.",
			Profile: map[Dimension]Range{
				DimOil:         {3, 6},
				DimSensitivity: {0, 3},
				DimBreakouts:   {0, 2},
				DimMaturity:    {0, 5},
				DimHormonal:    {0, 2},
			},
		},
		{
			ID:      "desert-dry",
			Name:    "Desert Dry",
			Emoji:   "🏜️",
			Summary: "Persistently dry, tight skin that lacks oil.",
			Profile: map[Dimension]Range{
				DimOil:         {0, 2},
				DimSensitivity: {2, 6},
				DimBreakouts:   {0, 2},
				DimMaturity:    {0, 7},
				DimHormonal:    {0, 2},
			},
		},
		{
			ID:      "oil-slick",
			Name:    "Oil Slick",
			Emoji:   "💧",
			Summary: "All-over oil production without significant breakouts.",
			Profile: map[Dimension]Range{
				DimOil:         {7, 10},
				DimSensitivity: {0, 3},
				DimBreakouts:   {0, 3},
				DimMaturity:    {0, 4},
				DimHormonal:    {0, 3},
			},
		},
		{
			ID:      "breakout-battler",
			Name:    "Breakout Battler",
			Emoji:   "🌋",
			Summary: "Oily skin with frequent, non-cyclical breakouts.",
			Profile: map[Dimension]Range{
				DimOil:         {6, 10},
				DimSensitivity: {1, 5},
				DimBreakouts:   {6, 10},
				DimMaturity:    {0, 4},
				DimHormonal:    {0, 4},
			},
		},
		{
			ID:      "hormonal-cycler",
			Name:    "Hormonal Cycler",
			Emoji:   "🌙",
			Summary: "Breakouts that track a hormonal rhythm, often along the jaw.",
			Profile: map[Dimension]Range{
				DimOil:         {4, 8},
				DimSensitivity: {1, 5},
				DimBreakouts:   {5, 9},
				DimMaturity:    {0, 5},
				DimHormonal:    {7, 10},
			},
		},
		{
			ID:      "sensitive-reactor",
			Name:    "Sensitive Reactor",
			Emoji:   "🌡️",
			Summary: "Skin that reacts to new products, fragrance, and friction.",
			Profile: map[Dimension]Range{
				DimOil:         {2, 6},
				DimSensitivity: {7, 10},
				DimBreakouts:   {0, 4},
				DimMaturity:    {0, 6},
				DimHormonal:    {0, 3},
			},
		},
		{
			ID:      "rosy-flush",
			Name:    "Rosy Flush",
			Emoji:   "🌹",
			Summary: "Easy flushing and persistent central redness.",
			Profile: map[Dimension]Range{
				DimOil:         {2, 6},
				DimSensitivity: {6, 10},
				DimBreakouts:   {0, 4},
				DimMaturity:    {2, 8},
				DimHormonal:    {0, 3},
			},
		},
		{
			ID:      "combo-zones",
			Name:    "Combination Zones",
			Emoji:   "🗺️",
			Summary: "Oily T-zone with dry or normal cheeks.",
			Profile: map[Dimension]Range{
				DimOil:         {4, 7},
				DimSensitivity: {1, 5},
				DimBreakouts:   {1, 5},
				DimMaturity:    {0, 5},
				DimHormonal:    {0, 4},
			},
		},
		{
			ID:      "thirsty-shine",
			Name:    "Thirsty Shine",
			Emoji:   "🥀",
			Summary: "Dehydrated skin that overproduces oil to compensate.",
			Profile: map[Dimension]Range{
				DimOil:         {5, 9},
				DimSensitivity: {2, 6},
				DimBreakouts:   {1, 5},
				DimMaturity:    {0, 6},
				DimHormonal:    {0, 3},
			},
		},
		{
			ID:      "mature-renewal",
			Name:    "Mature Renewal",
			Emoji:   "⏳",
			Summary: "Skin whose main concerns are elasticity, lines, and slower turnover.",
			Profile: map[Dimension]Range{
				DimOil:         {1, 5},
				DimSensitivity: {2, 6},
				DimBreakouts:   {0, 2},
				DimMaturity:    {7, 10},
				DimHormonal:    {0, 5},
			},
		},
		{
			ID:      "barrier-breaker",
			Name:    "Barrier Breaker",
			Emoji:   "🧱",
			Summary: "A compromised moisture barrier: flaking, itching, and stinging.",
			Profile: map[Dimension]Range{
				DimOil:         {0, 4},
				DimSensitivity: {6, 10},
				DimBreakouts:   {0, 4},
				DimMaturity:    {0, 7},
				DimHormonal:    {0, 3},
			},
		},
		{
			ID:      "texture-tempest",
			Name:    "Texture Tempest",
			Emoji:   "🍄",
			Summary: "Uniform itchy bumps that flare with sweat and humidity.",
			Profile: map[Dimension]Range{
				DimOil:         {4, 8},
				DimSensitivity: {2, 7},
				DimBreakouts:   {4, 8},
				DimMaturity:    {0, 5},
				DimHormonal:    {0, 3},
			},
		},
	}
}
