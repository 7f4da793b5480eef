// Package serializer turns entities into the JSON shapes the API returns.
//
// Each response shape is its own struct. The struct fields are the
// allow-list: only the listed fields are written, in declaration order,
// and nested relations are expanded exactly one level through another
// projection type. Nothing is ever serialized straight from a model
// value, so a new model field cannot leak into a response by accident
// and Hero -> HeroPower -> Hero cycles cannot be expressed.
package serializer

import (
	"github.com/deppfellow/superheroes/internal/model"
)

// HeroSummary is {id, name, super_name}.
type HeroSummary struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	SuperName string `json:"super_name"`
}

// PowerSummary is {id, name, description}.
type PowerSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HeroPowerOfHero is a link as seen from its hero: it carries the power
// but never the hero again.
type HeroPowerOfHero struct {
	ID       int64        `json:"id"`
	HeroID   int64        `json:"hero_id"`
	PowerID  int64        `json:"power_id"`
	Strength string       `json:"strength"`
	Power    PowerSummary `json:"power"`
}

// HeroDetail is a hero with its links expanded one level.
type HeroDetail struct {
	ID         int64             `json:"id"`
	Name       string            `json:"name"`
	SuperName  string            `json:"super_name"`
	HeroPowers []HeroPowerOfHero `json:"hero_powers"`
}

// HeroPowerDetail is a freshly created link with both parents summarized.
// The summaries never include the parents' own hero_powers.
type HeroPowerDetail struct {
	ID       int64        `json:"id"`
	HeroID   int64        `json:"hero_id"`
	PowerID  int64        `json:"power_id"`
	Strength string       `json:"strength"`
	Hero     HeroSummary  `json:"hero"`
	Power    PowerSummary `json:"power"`
}

func NewHeroSummary(h *model.Hero) HeroSummary {
	return HeroSummary{
		ID:        h.ID,
		Name:      h.Name(),
		SuperName: h.SuperName(),
	}
}

// NewHeroSummaries always returns a non-nil slice so an empty table
// serializes as [] rather than null.
func NewHeroSummaries(heroes []model.Hero) []HeroSummary {
	out := make([]HeroSummary, 0, len(heroes))
	for i := range heroes {
		out = append(out, NewHeroSummary(&heroes[i]))
	}
	return out
}

func NewPowerSummary(p *model.Power) PowerSummary {
	return PowerSummary{
		ID:          p.ID,
		Name:        p.Name(),
		Description: p.Description(),
	}
}

// NewPowerSummaries always returns a non-nil slice.
func NewPowerSummaries(powers []model.Power) []PowerSummary {
	out := make([]PowerSummary, 0, len(powers))
	for i := range powers {
		out = append(out, NewPowerSummary(&powers[i]))
	}
	return out
}

// NewHeroDetail projects a hero loaded with its links and their powers.
// A link whose power was not loaded gets a zero PowerSummary.
func NewHeroDetail(h *model.Hero) HeroDetail {
	links := make([]HeroPowerOfHero, 0, len(h.HeroPowers))
	for i := range h.HeroPowers {
		hp := &h.HeroPowers[i]

		var power PowerSummary
		if hp.Power != nil {
			power = NewPowerSummary(hp.Power)
		}

		links = append(links, HeroPowerOfHero{
			ID:       hp.ID,
			HeroID:   hp.HeroID,
			PowerID:  hp.PowerID,
			Strength: string(hp.Strength()),
			Power:    power,
		})
	}

	return HeroDetail{
		ID:         h.ID,
		Name:       h.Name(),
		SuperName:  h.SuperName(),
		HeroPowers: links,
	}
}

// NewHeroPowerDetail projects a link loaded with both parents.
func NewHeroPowerDetail(hp *model.HeroPower) HeroPowerDetail {
	out := HeroPowerDetail{
		ID:       hp.ID,
		HeroID:   hp.HeroID,
		PowerID:  hp.PowerID,
		Strength: string(hp.Strength()),
	}
	if hp.Hero != nil {
		out.Hero = NewHeroSummary(hp.Hero)
	}
	if hp.Power != nil {
		out.Power = NewPowerSummary(hp.Power)
	}
	return out
}
