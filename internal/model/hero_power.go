package model

import (
	"fmt"
	"strings"
)

// Strength rates how strongly a hero wields a power.
type Strength string

const (
	StrengthStrong  Strength = "strong"
	StrengthWeak    Strength = "weak"
	StrengthAverage Strength = "average"
)

// Strengths lists every accepted Strength, in the order used by error messages.
var Strengths = []Strength{StrengthStrong, StrengthWeak, StrengthAverage}

// strengthRule is the validator tag matching Strengths.
var strengthRule = func() string {
	values := make([]string, len(Strengths))
	for i, s := range Strengths {
		values[i] = string(s)
	}
	return "oneof=" + strings.Join(values, " ")
}()

// HeroPower links one Hero to one Power with a Strength.
//
// Hero and Power are only set when the link was loaded with its parents.
// Links are never updated once stored.
type HeroPower struct {
	ID       int64
	HeroID   int64
	PowerID  int64
	strength Strength

	Hero  *Hero
	Power *Power
}

// NewHeroPower builds a link between heroID and powerID.
//
// The ids are not checked here; the store rejects ids that reference
// missing rows.
func NewHeroPower(heroID, powerID int64, strength string) (*HeroPower, error) {
	hp := &HeroPower{HeroID: heroID, PowerID: powerID}
	if err := hp.SetStrength(strength); err != nil {
		return nil, err
	}
	return hp, nil
}

// RestoreHeroPower rebuilds a stored link without validating it.
func RestoreHeroPower(id, heroID, powerID int64, strength string) *HeroPower {
	return &HeroPower{ID: id, HeroID: heroID, PowerID: powerID, strength: Strength(strength)}
}

func (hp *HeroPower) Strength() Strength { return hp.strength }

// SetStrength assigns the strength. Values outside Strengths are rejected.
func (hp *HeroPower) SetStrength(strength string) error {
	if err := validate.Var(strength, "required,"+strengthRule); err != nil {
		values := make([]string, len(Strengths))
		for i, s := range Strengths {
			values[i] = string(s)
		}
		return newValidationError("strength",
			fmt.Sprintf("Strength must be one of the following values: %s.", strings.Join(values, ", ")))
	}
	hp.strength = Strength(strength)
	return nil
}
