// Package news handles the headline input of a forecast request. Titles are
// validated and echoed back; no computation reads them.
package news

import (
	"fmt"
	"strings"

	"StockForecast/internal/model"

	"github.com/go-playground/validator/v10"
)

// Limits of the headline input.
const (
	MaxTitles      = 50
	MaxTitleLength = 300
)

var validate = validator.New()

type titleSet struct {
	Titles []string `validate:"max=50,dive,required,max=300"`
}

// ParseTitles splits raw text on newlines, trims every line and drops empty ones.
func ParseTitles(raw string) []string {
	var titles []string
	for _, line := range strings.Split(raw, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			titles = append(titles, t)
		}
	}
	return titles
}

// Normalize trims titles, drops empty entries and validates the result.
func Normalize(titles []string) ([]string, error) {
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		out = append(out, ParseTitles(t)...)
	}
	if err := validate.Struct(titleSet{Titles: out}); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidNews, err)
	}
	return out, nil
}
