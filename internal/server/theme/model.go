// Package theme implements the theme singleton. Unlike the profile, a theme
// write is a complete replacement: the six fields always travel together.
package theme

import (
	"fmt"

	"github.com/dmitrijs2005/linkfolio/internal/common"
)

type Theme struct {
	Theme           string `json:"theme"`
	PrimaryColor    string `json:"primaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	CardBackground  string `json:"cardBackground"`
	CardShadow      int    `json:"cardShadow"`
}

func Default() Theme {
	return Theme{
		Theme:           "light",
		PrimaryColor:    "#0d6efd",
		BackgroundColor: "#f8f9fa",
		TextColor:       "#212529",
		CardBackground:  "#ffffff",
		CardShadow:      4,
	}
}

// UpdateParams mirrors Theme with every field optional so a write can tell
// "absent" from "zero". Resolve validates that nothing is missing.
type UpdateParams struct {
	Theme           *string `json:"theme"`
	PrimaryColor    *string `json:"primaryColor"`
	BackgroundColor *string `json:"backgroundColor"`
	TextColor       *string `json:"textColor"`
	CardBackground  *string `json:"cardBackground"`
	CardShadow      *int    `json:"cardShadow"`
}

// Resolve returns the complete theme, or ErrorValidation naming the first
// missing mandatory field.
func (p UpdateParams) Resolve() (*Theme, error) {
	required := []struct {
		name string
		ok   bool
	}{
		{"theme", p.Theme != nil},
		{"primaryColor", p.PrimaryColor != nil},
		{"backgroundColor", p.BackgroundColor != nil},
		{"textColor", p.TextColor != nil},
		{"cardBackground", p.CardBackground != nil},
		{"cardShadow", p.CardShadow != nil},
	}
	for _, f := range required {
		if !f.ok {
			return nil, fmt.Errorf("%w: missing required property: %s", common.ErrorValidation, f.name)
		}
	}

	return &Theme{
		Theme:           *p.Theme,
		PrimaryColor:    *p.PrimaryColor,
		BackgroundColor: *p.BackgroundColor,
		TextColor:       *p.TextColor,
		CardBackground:  *p.CardBackground,
		CardShadow:      *p.CardShadow,
	}, nil
}
