package consult

import "github.com/abhisek/dermatype/internal/questionbank"

// Demographics are scalar modifiers recorded alongside answers. They never
// act as discriminating questions; the confidence calculator applies them
// as multipliers on specific archetype scores.
type Demographics struct {
	Age     string `json:"age,omitempty"`
	Sex     string `json:"sex,omitempty"`
	Climate string `json:"climate,omitempty"`
	Sun     string `json:"sun,omitempty"`
}

// IsZero reports whether no demographic attribute is set.
func (d Demographics) IsZero() bool {
	return d == Demographics{}
}

// Merge overlays non-empty fields of override onto d and returns the result.
func (d Demographics) Merge(override Demographics) Demographics {
	if override.Age != "" {
		d.Age = override.Age
	}
	if override.Sex != "" {
		d.Sex = override.Sex
	}
	if override.Climate != "" {
		d.Climate = override.Climate
	}
	if override.Sun != "" {
		d.Sun = override.Sun
	}
	return d
}

// DeriveDemographics extracts demographic attributes from answers to
// demographics-phase questions. Later answers win if a field repeats.
func DeriveDemographics(bank *questionbank.Bank, answers History) Demographics {
	var d Demographics
	for _, a := range answers {
		q, err := bank.Question(a.QuestionID)
		if err != nil {
			continue
		}
		o, ok := q.Option(a.OptionID)
		if !ok || o.Demo == (questionbank.DemoAttr{}) {
			continue
		}
		switch o.Demo.Field {
		case "age":
			d.Age = o.Demo.Value
		case "sex":
			d.Sex = o.Demo.Value
		case "climate":
			d.Climate = o.Demo.Value
		case "sun":
			d.Sun = o.Demo.Value
		}
	}
	return d
}
