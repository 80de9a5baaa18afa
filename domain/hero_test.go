package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hero-lab/errors"
)

func Test_NewHero_Trims_Name(t *testing.T) {
	req := require.New(t)
	hero, err := NewHero("  Bombasto  ")
	req.NoError(err)
	req.Equal("Bombasto", hero.Name)
	req.Zero(hero.ID)
}

func Test_NewHero_Rejects_Blank_Names(t *testing.T) {
	req := require.New(t)
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := NewHero(name)
		req.ErrorIs(err, errors.ErrEmptyName)
	}
}

func Test_Validate_Existing_Hero(t *testing.T) {
	req := require.New(t)
	req.NoError(Hero{ID: 11, Name: "Mr. Nice"}.Validate())
	req.Error(Hero{ID: 11, Name: " "}.Validate())
}
