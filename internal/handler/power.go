package handler

import (
	"github.com/deppfellow/superheroes/internal/serializer"
	"github.com/deppfellow/superheroes/internal/server"
	"github.com/deppfellow/superheroes/internal/service"
	"github.com/deppfellow/superheroes/internal/validation"
	"github.com/labstack/echo/v4"
)

// UpdatePowerRequest is the PATCH /powers/:id payload.
//
// Description stays a pointer so an absent key can be told apart from
// a value; the service rejects both absent and empty descriptions.
type UpdatePowerRequest struct {
	ID          int64   `param:"id" json:"-"`
	Description *string `json:"description"`
}

func (r *UpdatePowerRequest) Validate() error {
	return validation.Struct(r)
}

type PowerHandler struct {
	Handler
	powers *service.PowerService
}

func NewPowerHandler(s *server.Server, powers *service.PowerService) *PowerHandler {
	return &PowerHandler{
		Handler: NewHandler(s),
		powers:  powers,
	}
}

func (h *PowerHandler) ListPowers(c echo.Context, _ *EmptyRequest) ([]serializer.PowerSummary, error) {
	powers, err := h.powers.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return serializer.NewPowerSummaries(powers), nil
}

func (h *PowerHandler) GetPower(c echo.Context, req *IDRequest) (serializer.PowerSummary, error) {
	power, err := h.powers.Get(c.Request().Context(), req.ID)
	if err != nil {
		return serializer.PowerSummary{}, err
	}
	return serializer.NewPowerSummary(power), nil
}

func (h *PowerHandler) UpdatePower(c echo.Context, req *UpdatePowerRequest) (serializer.PowerSummary, error) {
	power, err := h.powers.UpdateDescription(c.Request().Context(), req.ID, req.Description)
	if err != nil {
		return serializer.PowerSummary{}, err
	}
	return serializer.NewPowerSummary(power), nil
}
