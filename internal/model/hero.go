package model

// Hero is a person with a secret identity.
//
// HeroPowers is only populated when the hero was loaded together with its
// links (repository GetHero). Deleting a hero deletes its links.
type Hero struct {
	ID         int64
	name       string
	superName  string
	HeroPowers []HeroPower
}

// NewHero builds a Hero, validating both names.
func NewHero(name, superName string) (*Hero, error) {
	h := &Hero{}
	if err := h.SetName(name); err != nil {
		return nil, err
	}
	if err := h.SetSuperName(superName); err != nil {
		return nil, err
	}
	return h, nil
}

// RestoreHero rebuilds a stored Hero without validating it.
func RestoreHero(id int64, name, superName string) *Hero {
	return &Hero{ID: id, name: name, superName: superName}
}

// Name returns the hero's real name.
func (h *Hero) Name() string { return h.name }

// SuperName returns the hero's alias.
func (h *Hero) SuperName() string { return h.superName }

// SetName assigns the real name. Empty names are rejected.
func (h *Hero) SetName(name string) error {
	if err := validate.Var(name, "required"); err != nil {
		return newValidationError("name", "Name cannot be empty.")
	}
	h.name = name
	return nil
}

// SetSuperName assigns the alias. Empty aliases are rejected.
func (h *Hero) SetSuperName(superName string) error {
	if err := validate.Var(superName, "required"); err != nil {
		return newValidationError("super_name", "Super name cannot be empty.")
	}
	h.superName = superName
	return nil
}

// Powers walks the hero's links and returns the power on the other side of
// each one, in link order. Links loaded without their power are skipped.
func (h *Hero) Powers() []*Power {
	powers := make([]*Power, 0, len(h.HeroPowers))
	for i := range h.HeroPowers {
		if p := h.HeroPowers[i].Power; p != nil {
			powers = append(powers, p)
		}
	}
	return powers
}
