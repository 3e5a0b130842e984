package questionbank

func init() {
	b, err := New(seedQuestions())
	if err != nil {
		panic(err)
	}
	defaultBank = b
}

// seedQuestions returns the built-in 24-question consultation bank:
// 6 oil, 6 sensitivity, 8 differentiators, 4 demographics.
func seedQuestions() []Question {
	return []Question{
		// --- Oil phase ---
		{
			ID:     "oil-midday",
			Phase:  PhaseOil,
			Prompt: "By mid-afternoon, with no touch-ups, your skin looks:",
			Options: []Option{
				{ID: "shiny-all-over", Label: "Shiny all over", Deltas: map[string]float64{
					"oil-slick": 3, "breakout-battler": 1, "thirsty-shine": 1, "texture-tempest": 1}},
				{ID: "shiny-tzone", Label: "Shiny on the forehead and nose only", Deltas: map[string]float64{
					"combo-zones": 3, "balanced-glow": 1}},
				{ID: "comfortable", Label: "About the same as in the morning", Deltas: map[string]float64{
					"balanced-glow": 3}},
				{ID: "flat-tight", Label: "Flat, dull, or tight", Deltas: map[string]float64{
					"desert-dry": 3, "barrier-breaker": 2, "mature-renewal": 1}},
			},
		},
		{
			ID:     "oil-after-cleanse",
			Phase:  PhaseOil,
			Prompt: "An hour after a gentle cleanse, your bare skin feels:",
			Options: []Option{
				{ID: "tight-flaky", Label: "Tight, sometimes flaky", Deltas: map[string]float64{
					"desert-dry": 3, "barrier-breaker": 2}},
				{ID: "tight-then-shiny", Label: "Tight at first, then shiny", Deltas: map[string]float64{
					"thirsty-shine": 3, "combo-zones": 1}},
				{ID: "comfortable", Label: "Comfortable", Deltas: map[string]float64{
					"balanced-glow": 3, "mature-renewal": 1}},
				{ID: "already-oily", Label: "Already oily again", Deltas: map[string]float64{
					"oil-slick": 3, "breakout-battler": 1}},
			},
		},
		{
			ID:     "oil-pores",
			Phase:  PhaseOil,
			Prompt: "Your visible pores are:",
			Options: []Option{
				{ID: "large-everywhere", Label: "Enlarged across most of the face", Deltas: map[string]float64{
					"oil-slick": 3}},
				{ID: "large-tzone", Label: "Enlarged in the T-zone only", Deltas: map[string]float64{
					"combo-zones": 3, "thirsty-shine": 1}},
				{ID: "barely-visible", Label: "Barely visible", Deltas: map[string]float64{
					"desert-dry": 2, "balanced-glow": 2, "mature-renewal": 1}},
				{ID: "small-congested", Label: "Small but often congested", Deltas: map[string]float64{
					"texture-tempest": 2, "breakout-battler": 1}},
			},
		},
		{
			ID:     "oil-blotting",
			Phase:  PhaseOil,
			Prompt: "How often do you blot or powder away shine?",
			Options: []Option{
				{ID: "several-daily", Label: "Several times a day", Deltas: map[string]float64{
					"oil-slick": 3}},
				{ID: "once-daily", Label: "About once a day", Deltas: map[string]float64{
					"combo-zones": 2, "balanced-glow": 1}},
				{ID: "rarely", Label: "Rarely", Deltas: map[string]float64{
					"balanced-glow": 2, "desert-dry": 1}},
				{ID: "never", Label: "Never, there is nothing to blot", Deltas: map[string]float64{
					"desert-dry": 2, "mature-renewal": 1, "barrier-breaker": 1}},
			},
		},
		{
			ID:     "oil-flaking",
			Phase:  PhaseOil,
			Prompt: "Do you notice flaking or rough, dry patches?",
			Options: []Option{
				{ID: "frequent", Label: "Frequently, in many areas", Deltas: map[string]float64{
					"desert-dry": 3, "barrier-breaker": 2}},
				{ID: "despite-shine", Label: "Yes, even though my skin looks shiny", Deltas: map[string]float64{
					"thirsty-shine": 3, "barrier-breaker": 1}},
				{ID: "seasonal", Label: "Only in harsh weather", Deltas: map[string]float64{
					"balanced-glow": 2, "desert-dry": 1}},
				{ID: "never", Label: "Never", Deltas: map[string]float64{
					"oil-slick": 2}},
			},
		},
		{
			ID:     "oil-moisturizer",
			Phase:  PhaseOil,
			Prompt: "Skipping moisturizer for a day leaves your skin:",
			Options: []Option{
				{ID: "painfully-tight", Label: "Painfully tight", Deltas: map[string]float64{
					"desert-dry": 3, "barrier-breaker": 1}},
				{ID: "dull-but-fine", Label: "A little dull, but fine", Deltas: map[string]float64{
					"balanced-glow": 2, "mature-renewal": 1}},
				{ID: "unchanged", Label: "Unchanged", Deltas: map[string]float64{
					"oil-slick": 3}},
				{ID: "oilier", Label: "Oilier than ever", Deltas: map[string]float64{
					"thirsty-shine": 3, "oil-slick": 1}},
			},
		},

		// --- Sensitivity phase ---
		{
			ID:     "sens-new-products",
			Phase:  PhaseSensitivity,
			Prompt: "Trying a new skincare product usually:",
			Options: []Option{
				{ID: "stings", Label: "Stings or burns", Deltas: map[string]float64{
					"sensitive-reactor": 3, "barrier-breaker": 2}},
				{ID: "redness", Label: "Causes occasional redness", Deltas: map[string]float64{
					"sensitive-reactor": 2, "rosy-flush": 1}},
				{ID: "breaks-out", Label: "Breaks me out", Deltas: map[string]float64{
					"breakout-battler": 2, "texture-tempest": 1}},
				{ID: "no-reaction", Label: "Causes no reaction at all", Deltas: map[string]float64{
					"balanced-glow": 1, "oil-slick": 1}},
			},
		},
		{
			ID:     "sens-redness",
			Phase:  PhaseSensitivity,
			Prompt: "Facial redness, for you, is:",
			Options: []Option{
				{ID: "constant-central", Label: "Constant across the cheeks and nose, with visible vessels",
					Deltas: map[string]float64{"rosy-flush": 4},
					Flag:   FlagSuspectedRosacea},
				{ID: "trigger-flush", Label: "A flush after heat, alcohol, or spicy food", Deltas: map[string]float64{
					"rosy-flush": 3, "sensitive-reactor": 1}},
				{ID: "when-irritated", Label: "Only when something irritates my skin", Deltas: map[string]float64{
					"sensitive-reactor": 2}},
				{ID: "rare", Label: "Rare"},
			},
		},
		{
			ID:     "sens-itch",
			Phase:  PhaseSensitivity,
			Prompt: "Itching or stinging patches on your face:",
			Options: []Option{
				{ID: "cracked-weeping", Label: "Yes: cracked, weeping, or crusted patches",
					Deltas: map[string]float64{"barrier-breaker": 4},
					Flag:   FlagEczemaDermatitis},
				{ID: "itchy-dry", Label: "Itchy dry patches now and then", Deltas: map[string]float64{
					"barrier-breaker": 3, "desert-dry": 1}},
				{ID: "sting-actives", Label: "Stinging with acids or retinoids only", Deltas: map[string]float64{
					"sensitive-reactor": 2, "barrier-breaker": 1}},
				{ID: "none", Label: "None"},
			},
		},
		{
			ID:     "sens-fragrance",
			Phase:  PhaseSensitivity,
			Prompt: "Fragranced products (perfume, scented lotions):",
			SkipIfAny: []SkipRule{
				{QuestionID: "sens-new-products", OptionID: "no-reaction"},
			},
			Options: []Option{
				{ID: "always-react", Label: "Always set my skin off", Deltas: map[string]float64{
					"sensitive-reactor": 3}},
				{ID: "sometimes", Label: "Sometimes cause redness", Deltas: map[string]float64{
					"sensitive-reactor": 2, "rosy-flush": 1}},
				{ID: "broken-skin-only", Label: "Only bother broken or flaky skin", Deltas: map[string]float64{
					"barrier-breaker": 2}},
				{ID: "fine", Label: "Are fine", Deltas: map[string]float64{
					"balanced-glow": 1}},
			},
		},
		{
			ID:     "sens-weather",
			Phase:  PhaseSensitivity,
			Prompt: "Wind, heat, or sudden cold leaves your face:",
			Options: []Option{
				{ID: "flushed-hours", Label: "Flushed for hours", Deltas: map[string]float64{
					"rosy-flush": 3, "sensitive-reactor": 1}},
				{ID: "briefly-pink", Label: "Briefly pink", Deltas: map[string]float64{
					"balanced-glow": 1, "sensitive-reactor": 1}},
				{ID: "chapped-raw", Label: "Chapped and raw", Deltas: map[string]float64{
					"barrier-breaker": 2, "desert-dry": 2}},
				{ID: "unbothered", Label: "Unbothered", Deltas: map[string]float64{
					"oil-slick": 1}},
			},
		},
		{
			ID:     "sens-friction",
			Phase:  PhaseSensitivity,
			Prompt: "After friction (masks, helmets, a rough pillowcase) your skin shows:",
			Options: []Option{
				{ID: "welts", Label: "Welts or hive-like marks", Deltas: map[string]float64{
					"sensitive-reactor": 3}},
				{ID: "lingering-red", Label: "Red marks that linger", Deltas: map[string]float64{
					"rosy-flush": 2, "sensitive-reactor": 1}},
				{ID: "bumps-later", Label: "Small bumps a day or two later", Deltas: map[string]float64{
					"texture-tempest": 2, "breakout-battler": 1}},
				{ID: "nothing", Label: "Nothing"},
			},
		},

		// --- Differentiator phase ---
		{
			ID:     "diff-breakout-freq",
			Phase:  PhaseDifferentiators,
			Prompt: "How often do you get breakouts?",
			Options: []Option{
				{ID: "constant", Label: "There is always something active", Deltas: map[string]float64{
					"breakout-battler": 3, "oil-slick": 1}},
				{ID: "monthly-waves", Label: "In monthly waves", Deltas: map[string]float64{
					"hormonal-cycler": 3}},
				{ID: "occasional", Label: "Occasionally", Deltas: map[string]float64{
					"combo-zones": 1, "balanced-glow": 1}},
				{ID: "almost-never", Label: "Almost never", Deltas: map[string]float64{
					"balanced-glow": 1, "desert-dry": 1, "mature-renewal": 1}},
			},
		},
		{
			ID:     "diff-breakout-kind",
			Phase:  PhaseDifferentiators,
			Prompt: "Your typical breakouts are:",
			SkipIfAny: []SkipRule{
				{QuestionID: "diff-breakout-freq", OptionID: "almost-never"},
			},
			Options: []Option{
				{ID: "cystic-jawline", Label: "Deep, tender bumps along the jaw and chin", Deltas: map[string]float64{
					"hormonal-cycler": 4}},
				{ID: "widespread-cysts", Label: "Widespread painful cysts",
					Deltas: map[string]float64{"breakout-battler": 3},
					Flag:   FlagSevereCysticAcne},
				{ID: "uniform-bumps", Label: "Uniform itchy bumps on the forehead or hairline",
					Deltas: map[string]float64{"texture-tempest": 4},
					Flag:   FlagFungalAcnePattern},
				{ID: "clogged-pores", Label: "Blackheads and clogged pores", Deltas: map[string]float64{
					"oil-slick": 2, "combo-zones": 1, "breakout-battler": 1}},
			},
		},
		{
			ID:     "diff-cycle",
			Phase:  PhaseDifferentiators,
			Prompt: "Do your breakouts track a monthly cycle?",
			SkipIfAny: []SkipRule{
				{QuestionID: "diff-breakout-freq", OptionID: "almost-never"},
			},
			Options: []Option{
				{ID: "clockwork", Label: "Like clockwork", Deltas: map[string]float64{
					"hormonal-cycler": 4}},
				{ID: "sometimes", Label: "Sometimes", Deltas: map[string]float64{
					"hormonal-cycler": 2}},
				{ID: "no-pattern", Label: "No pattern I can see", Deltas: map[string]float64{
					"breakout-battler": 2}},
				{ID: "not-applicable", Label: "Not applicable"},
			},
		},
		{
			ID:     "diff-sweat",
			Phase:  PhaseDifferentiators,
			Prompt: "Do bumps flare after sweat, heat, or humid days?",
			SkipIfAny: []SkipRule{
				{QuestionID: "diff-breakout-freq", OptionID: "almost-never"},
			},
			Options: []Option{
				{ID: "reliably", Label: "Reliably", Deltas: map[string]float64{
					"texture-tempest": 3}},
				{ID: "sometimes", Label: "Sometimes", Deltas: map[string]float64{
					"texture-tempest": 1, "breakout-battler": 1}},
				{ID: "no", Label: "No", Deltas: map[string]float64{
					"breakout-battler": 1, "hormonal-cycler": 1}},
				{ID: "hard-to-say", Label: "Hard to say"},
			},
		},
		{
			ID:     "diff-zones",
			Phase:  PhaseDifferentiators,
			Prompt: "Comparing your cheeks with your forehead and nose:",
			Options: []Option{
				{ID: "cheeks-dry", Label: "Cheeks dry or normal, T-zone oily", Deltas: map[string]float64{
					"combo-zones": 3}},
				{ID: "all-oily", Label: "Oily everywhere", Deltas: map[string]float64{
					"oil-slick": 2}},
				{ID: "all-dry", Label: "Dry everywhere", Deltas: map[string]float64{
					"desert-dry": 2}},
				{ID: "even-calm", Label: "Even and calm everywhere", Deltas: map[string]float64{
					"balanced-glow": 2}},
			},
		},
		{
			ID:     "diff-dehydration",
			Phase:  PhaseDifferentiators,
			Prompt: "Does your skin ever feel tight yet look shiny at the same time?",
			Options: []Option{
				{ID: "frequently", Label: "Frequently", Deltas: map[string]float64{
					"thirsty-shine": 3}},
				{ID: "after-dry-air", Label: "After flights or air conditioning", Deltas: map[string]float64{
					"thirsty-shine": 2}},
				{ID: "never-tight", Label: "It never feels tight", Deltas: map[string]float64{
					"oil-slick": 1}},
				{ID: "never-shiny", Label: "It never looks shiny", Deltas: map[string]float64{
					"desert-dry": 1}},
			},
		},
		{
			ID:     "diff-lines",
			Phase:  PhaseDifferentiators,
			Prompt: "Fine lines, loss of bounce, and slower healing are:",
			Options: []Option{
				{ID: "main-concern", Label: "My main skin concern", Deltas: map[string]float64{
					"mature-renewal": 4}},
				{ID: "starting", Label: "Something I'm starting to notice", Deltas: map[string]float64{
					"mature-renewal": 2}},
				{ID: "only-dehydrated", Label: "Visible only when my skin is parched", Deltas: map[string]float64{
					"thirsty-shine": 2}},
				{ID: "not-yet", Label: "Not on my radar"},
			},
		},
		{
			ID:     "diff-sudden",
			Phase:  PhaseDifferentiators,
			Prompt: "Has your skin changed character suddenly in the last few months?",
			Options: []Option{
				{ID: "dramatically", Label: "Yes, dramatically",
					Deltas: map[string]float64{"hormonal-cycler": 1},
					Flag:   FlagSuddenOnsetChange},
				{ID: "somewhat", Label: "Somewhat", Deltas: map[string]float64{
					"hormonal-cycler": 1}},
				{ID: "gradual", Label: "It has shifted gradually over years", Deltas: map[string]float64{
					"mature-renewal": 1}},
				{ID: "stable", Label: "No, it is stable", Deltas: map[string]float64{
					"balanced-glow": 1}},
			},
		},

		// --- Demographics phase ---
		// Demographic options carry no deltas; they record attributes that
		// the confidence calculator applies as scalar multipliers.
		{
			ID:     "demo-age",
			Phase:  PhaseDemographics,
			Prompt: "Your age bracket:",
			Options: []Option{
				{ID: "under-18", Label: "Under 18", Demo: DemoAttr{Field: "age", Value: "teen"}},
				{ID: "18-34", Label: "18–34", Demo: DemoAttr{Field: "age", Value: "young-adult"}},
				{ID: "35-49", Label: "35–49", Demo: DemoAttr{Field: "age", Value: "adult"}},
				{ID: "50-plus", Label: "50+", Demo: DemoAttr{Field: "age", Value: "mature"}},
			},
		},
		{
			ID:     "demo-sex",
			Phase:  PhaseDemographics,
			Prompt: "Your sex:",
			Options: []Option{
				{ID: "female", Label: "Female", Demo: DemoAttr{Field: "sex", Value: "female"}},
				{ID: "male", Label: "Male", Demo: DemoAttr{Field: "sex", Value: "male"}},
				{ID: "prefer-not", Label: "Prefer not to say", Demo: DemoAttr{Field: "sex", Value: "unspecified"}},
			},
		},
		{
			ID:     "demo-climate",
			Phase:  PhaseDemographics,
			Prompt: "The climate where you live is mostly:",
			Options: []Option{
				{ID: "arid", Label: "Dry or arid", Demo: DemoAttr{Field: "climate", Value: "arid"}},
				{ID: "humid", Label: "Hot and humid", Demo: DemoAttr{Field: "climate", Value: "humid"}},
				{ID: "temperate", Label: "Temperate", Demo: DemoAttr{Field: "climate", Value: "temperate"}},
				{ID: "cold", Label: "Cold", Demo: DemoAttr{Field: "climate", Value: "cold"}},
			},
		},
		{
			ID:     "demo-sun",
			Phase:  PhaseDemographics,
			Prompt: "Your typical weekly sun exposure:",
			Options: []Option{
				{ID: "high", Label: "Hours outdoors most days", Demo: DemoAttr{Field: "sun", Value: "high"}},
				{ID: "moderate", Label: "A moderate amount", Demo: DemoAttr{Field: "sun", Value: "moderate"}},
				{ID: "low", Label: "Mostly indoors", Demo: DemoAttr{Field: "sun", Value: "low"}},
			},
		},
	}
}
