package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPower(t *testing.T) {
	tests := []struct {
		name        string
		powerName   string
		description string
		wantField   string
		wantMessage string
	}{
		{
			name:        "valid",
			powerName:   "flight",
			description: "Gives the wielder the ability to fly through the skies at supersonic speed",
		},
		{
			name:        "empty name",
			powerName:   "",
			description: "Gives the wielder super-human strength",
			wantField:   "name",
			wantMessage: "Name cannot be empty.",
		},
		{
			name:        "empty description",
			powerName:   "flight",
			description: "",
			wantField:   "description",
			wantMessage: "Description must be present.",
		},
		{
			name:        "short description",
			powerName:   "flight",
			description: "short",
			wantField:   "description",
			wantMessage: "Description must be at least 20 characters long.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPower(tt.powerName, tt.description)
			if tt.wantMessage == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.powerName, p.Name())
				assert.Equal(t, tt.description, p.Description())
				return
			}

			require.Error(t, err)
			assert.Nil(t, p)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.Equal(t, tt.wantMessage, vErr.Error())
		})
	}
}

func TestPowerSetDescriptionKeepsPreviousValue(t *testing.T) {
	original := "Allows the wielder to use her senses at a super-human level"
	p, err := NewPower("super human senses", original)
	require.NoError(t, err)

	err = p.SetDescription("too short")
	require.Error(t, err)
	assert.Equal(t, original, p.Description())

	err = p.SetDescription("")
	require.Error(t, err)
	assert.Equal(t, original, p.Description())
}

func TestPowerDescriptionCountsCharacters(t *testing.T) {
	p := &Power{}

	// 19 multi-byte runes is more than 20 bytes but still too short.
	require.Error(t, p.SetDescription(strings.Repeat("é", MinDescriptionLength-1)))
	require.NoError(t, p.SetDescription(strings.Repeat("é", MinDescriptionLength)))
}

func TestNewHeroPower(t *testing.T) {
	for _, s := range Strengths {
		hp, err := NewHeroPower(1, 2, string(s))
		require.NoError(t, err)
		assert.Equal(t, s, hp.Strength())
		assert.Equal(t, int64(1), hp.HeroID)
		assert.Equal(t, int64(2), hp.PowerID)
	}

	for _, bad := range []string{"", "mighty", "Strong", " weak"} {
		hp, err := NewHeroPower(1, 2, bad)
		require.Error(t, err, bad)
		assert.Nil(t, hp)
		assert.Equal(t, "Strength must be one of the following values: strong, weak, average.", err.Error())
	}
}

func TestHeroPowerSetStrengthKeepsPreviousValue(t *testing.T) {
	hp, err := NewHeroPower(1, 1, "weak")
	require.NoError(t, err)

	require.Error(t, hp.SetStrength("legendary"))
	assert.Equal(t, StrengthWeak, hp.Strength())
}

func TestNewHero(t *testing.T) {
	h, err := NewHero("Kamala Khan", "Ms. Marvel")
	require.NoError(t, err)
	assert.Equal(t, "Kamala Khan", h.Name())
	assert.Equal(t, "Ms. Marvel", h.SuperName())

	_, err = NewHero("", "Ms. Marvel")
	assert.EqualError(t, err, "Name cannot be empty.")

	_, err = NewHero("Kamala Khan", "")
	assert.EqualError(t, err, "Super name cannot be empty.")
}

func TestHeroPowers(t *testing.T) {
	flight, err := NewPower("flight", "Gives the wielder the ability to fly through the skies at supersonic speed")
	require.NoError(t, err)
	flight.ID = 2

	strength, err := NewPower("super strength", "Gives the wielder super-human strength")
	require.NoError(t, err)
	strength.ID = 1

	h, err := NewHero("Kamala Khan", "Ms. Marvel")
	require.NoError(t, err)
	h.HeroPowers = []HeroPower{
		{ID: 1, PowerID: 2, Power: flight},
		{ID: 2, PowerID: 3},
		{ID: 3, PowerID: 1, Power: strength},
	}

	powers := h.Powers()
	require.Len(t, powers, 2)
	assert.Same(t, flight, powers[0])
	assert.Same(t, strength, powers[1])

	empty := &Hero{}
	assert.Empty(t, empty.Powers())
}
