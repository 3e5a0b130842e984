package confidence

import "github.com/abhisek/dermatype/internal/consult"

// Modifier scales one archetype's raw score when a demographic attribute
// matches. Modifiers are data, not code, so the adjustment table stays
// auditable in one place.
type Modifier struct {
	Field       string
	Value       string
	ArchetypeID string
	Factor      float64
}

// modifiers is the built-in demographic adjustment table.
var modifiers = []Modifier{
	{Field: "age", Value: "teen", ArchetypeID: "hormonal-cycler", Factor: 1.2},
	{Field: "age", Value: "teen", ArchetypeID: "breakout-battler", Factor: 1.2},
	{Field: "age", Value: "teen", ArchetypeID: "mature-renewal", Factor: 0.5},
	{Field: "age", Value: "young-adult", ArchetypeID: "hormonal-cycler", Factor: 1.15},
	{Field: "age", Value: "mature", ArchetypeID: "mature-renewal", Factor: 1.5},
	{Field: "age", Value: "mature", ArchetypeID: "hormonal-cycler", Factor: 0.8},

	{Field: "sex", Value: "female", ArchetypeID: "hormonal-cycler", Factor: 1.25},

	{Field: "climate", Value: "arid", ArchetypeID: "desert-dry", Factor: 1.3},
	{Field: "climate", Value: "humid", ArchetypeID: "texture-tempest", Factor: 1.25},
	{Field: "climate", Value: "humid", ArchetypeID: "oil-slick", Factor: 1.1},
	{Field: "climate", Value: "cold", ArchetypeID: "barrier-breaker", Factor: 1.15},

	{Field: "sun", Value: "high", ArchetypeID: "mature-renewal", Factor: 1.2},
}

// Modifiers returns the demographic adjustment table.
func Modifiers() []Modifier {
	out := make([]Modifier, len(modifiers))
	copy(out, modifiers)
	return out
}

// applyModifiers multiplies raw scores in place for every matching rule.
func applyModifiers(raw map[string]float64, d consult.Demographics) {
	if d.IsZero() {
		return
	}
	for _, m := range modifiers {
		if demoValue(d, m.Field) != m.Value {
			continue
		}
		raw[m.ArchetypeID] *= m.Factor
	}
}

func demoValue(d consult.Demographics, field string) string {
	switch field {
	case "age":
		return d.Age
	case "sex":
		return d.Sex
	case "climate":
		return d.Climate
	case "sun":
		return d.Sun
	default:
		return ""
	}
}
