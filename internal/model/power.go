package model

import (
	"fmt"
)

// MinDescriptionLength is the shortest description a Power may carry,
// counted in characters (runes), not bytes.
const MinDescriptionLength = 20

// Power is an ability a hero can have.
type Power struct {
	ID          int64
	name        string
	description string
	HeroPowers  []HeroPower
}

// NewPower builds a Power, validating the name and the description.
func NewPower(name, description string) (*Power, error) {
	p := &Power{}
	if err := p.SetName(name); err != nil {
		return nil, err
	}
	if err := p.SetDescription(description); err != nil {
		return nil, err
	}
	return p, nil
}

// RestorePower rebuilds a stored Power without validating it.
func RestorePower(id int64, name, description string) *Power {
	return &Power{ID: id, name: name, description: description}
}

func (p *Power) Name() string        { return p.name }
func (p *Power) Description() string { return p.description }

// SetName assigns the name. Empty names are rejected.
func (p *Power) SetName(name string) error {
	if err := validate.Var(name, "required"); err != nil {
		return newValidationError("name", "Name cannot be empty.")
	}
	p.name = name
	return nil
}

// SetDescription assigns the description.
//
// The description must be present and at least MinDescriptionLength
// characters long. On failure the previous description is kept.
func (p *Power) SetDescription(description string) error {
	if err := validate.Var(description, "required"); err != nil {
		return newValidationError("description", "Description must be present.")
	}
	if err := validate.Var(description, fmt.Sprintf("min=%d", MinDescriptionLength)); err != nil {
		return newValidationError("description",
			fmt.Sprintf("Description must be at least %d characters long.", MinDescriptionLength))
	}
	p.description = description
	return nil
}
