// Package domain contains core concepts of the hero catalog.
// A Hero is pure data; identifiers are assigned by the backend.
package domain

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"hero-lab/errors"
)

var validate = validator.New()

// Hero represents a single catalog entry.
// ID is zero until the backend assigns one and never changes afterwards.
type Hero struct {
	ID   int    `json:"id,omitempty" validate:"gte=0"`
	Name string `json:"name" validate:"required"`
}

// NewHero builds an unsaved hero from raw user input.
// The name is trimmed; an empty result is rejected before anything
// reaches the network.
func NewHero(name string) (Hero, error) {
	hero := Hero{Name: strings.TrimSpace(name)}
	if err := hero.Validate(); err != nil {
		return Hero{}, err
	}
	return hero, nil
}

func (h Hero) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return errors.ErrEmptyName
	}
	return validate.Struct(h)
}
