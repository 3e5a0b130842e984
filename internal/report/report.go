// Package report renders a stored consultation as a PDF document.
package report

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/signintech/gopdf"

	"github.com/abhisek/dermatype/internal/archetype"
	"github.com/abhisek/dermatype/internal/questionbank"
	"github.com/abhisek/dermatype/internal/store"
)

// defaultFontPaths covers the usual DejaVu locations across distros.
var defaultFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
}

const pageTextWidth = 500

// Generator renders consultation reports. The bank is used to resolve
// question prompts and option labels in the answer breakdown; answers
// that no longer resolve fall back to their raw IDs.
type Generator struct {
	bank *questionbank.Bank

	// FontPaths are probed in order for a usable TTF font.
	FontPaths []string
}

// NewGenerator creates a generator with the default font search paths.
func NewGenerator(bank *questionbank.Bank) *Generator {
	return &Generator{bank: bank, FontPaths: defaultFontPaths}
}

// FontAvailable reports whether any configured font path exists.
func (g *Generator) FontAvailable() bool {
	for _, p := range g.FontPaths {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}

// Generate renders the consultation as a PDF and returns its bytes.
func (g *Generator) Generate(c *store.Consultation) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	if err := g.loadFont(&pdf); err != nil {
		return nil, err
	}

	if err := pdf.SetFont("main", "", 20); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Dermatype Skin Profile Report")
	pdf.Br(30)

	if err := pdf.SetFont("main", "", 11); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Date: %s", c.CreatedAt.Format(time.DateOnly)))
	pdf.Br(14)
	pdf.Cell(nil, fmt.Sprintf("Consultation: %s", c.ID))
	pdf.Br(14)
	pdf.Cell(nil, fmt.Sprintf("Questions answered: %d", len(c.Answers)))
	pdf.Br(24)

	if c.Result != nil {
		if err := g.writeResult(&pdf, c); err != nil {
			return nil, err
		}
	}

	if c.Advice != "" {
		if err := section(&pdf, "Suggested care"); err != nil {
			return nil, err
		}
		writeWrapped(&pdf, c.Advice)
		pdf.Br(10)
	}

	if err := pdf.SetFont("main", "", 8); err != nil {
		return nil, err
	}
	pdf.Br(16)
	pdf.Cell(nil, "This report describes a skin care profile, not a medical diagnosis.")

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the consultation and writes it to path.
func (g *Generator) WriteFile(c *store.Consultation, path string) error {
	data, err := g.Generate(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (g *Generator) loadFont(pdf *gopdf.GoPdf) error {
	var lastErr error
	for _, p := range g.FontPaths {
		if err := pdf.AddTTFFont("main", p); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	return fmt.Errorf("no usable TTF font found (install dejavu fonts): %w", lastErr)
}

func (g *Generator) writeResult(pdf *gopdf.GoPdf, c *store.Consultation) error {
	res := c.Result

	if err := section(pdf, "Skin profile"); err != nil {
		return err
	}
	pdf.Cell(nil, fmt.Sprintf("%s  (confidence %.0f/100, %s)",
		archetypeName(res.Primary), res.Confidence, res.Tier))
	pdf.Br(16)
	if a, err := archetype.Get(res.Primary); err == nil {
		writeWrapped(pdf, a.Summary)
	}
	pdf.Br(10)

	if len(res.Flags) > 0 {
		if err := section(pdf, "Flags for professional review"); err != nil {
			return err
		}
		for _, f := range res.Flags {
			pdf.Cell(nil, fmt.Sprintf("- %s", f))
			pdf.Br(13)
		}
		writeWrapped(pdf, "These observations warrant a dermatologist's opinion.")
		pdf.Br(10)
	}

	if len(res.Differential) > 0 {
		if err := section(pdf, "Also considered"); err != nil {
			return err
		}
		for _, cand := range res.Differential {
			pdf.Cell(nil, fmt.Sprintf("- %s (%.0f%% of score)",
				archetypeName(cand.ArchetypeID), cand.Probability*100))
			pdf.Br(13)
		}
		pdf.Br(10)
	}

	if len(res.Explanation) > 0 {
		if err := section(pdf, "What drove this match"); err != nil {
			return err
		}
		for _, k := range res.Explanation {
			writeWrapped(pdf, fmt.Sprintf("- %s", g.describeAnswer(k.QuestionID, k.OptionID)))
		}
		pdf.Br(10)
	}

	return nil
}

// describeAnswer renders a (question, option) pair as prompt and label,
// falling back to raw IDs when the bank no longer carries them.
func (g *Generator) describeAnswer(questionID, optionID string) string {
	if g.bank != nil {
		if q, err := g.bank.Question(questionID); err == nil {
			if o, ok := q.Option(optionID); ok {
				return fmt.Sprintf("%s: %s", q.Prompt, o.Label)
			}
		}
	}
	return fmt.Sprintf("%s: %s", questionID, optionID)
}

func archetypeName(id string) string {
	if a, err := archetype.Get(id); err == nil {
		return a.Name
	}
	return id
}

func section(pdf *gopdf.GoPdf, title string) error {
	if err := pdf.SetFont("main", "", 14); err != nil {
		return err
	}
	pdf.Cell(nil, title)
	pdf.Br(16)
	return pdf.SetFont("main", "", 11)
}

func writeWrapped(pdf *gopdf.GoPdf, text string) {
	lines, err := pdf.SplitText(text, pageTextWidth)
	if err != nil {
		lines = []string{text}
	}
	for _, l := range lines {
		pdf.Cell(nil, l)
		pdf.Br(13)
	}
}
