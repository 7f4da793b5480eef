package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/superheroes/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type linkRequest struct {
	ID       int64  `param:"id" json:"-" validate:"required"`
	Strength string `json:"strength" validate:"required,oneof=strong weak average"`
	Note     string `json:"note" validate:"omitempty,min=3,max=5"`
	Count    int    `json:"count" validate:"min=1"`
}

func (r *linkRequest) Validate() error {
	return Struct(r)
}

func bind(t *testing.T, body string, id string) (*linkRequest, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues(id)

	payload := &linkRequest{}
	return payload, BindAndValidate(c, payload)
}

func TestBindAndValidate(t *testing.T) {
	payload, err := bind(t, `{"strength":"weak","count":2}`, "7")
	require.NoError(t, err)
	assert.Equal(t, int64(7), payload.ID)
	assert.Equal(t, "weak", payload.Strength)
}

func TestBindAndValidate_Messages(t *testing.T) {
	tests := []struct {
		name string
		body string
		id   string
		want []string
	}{
		{
			name: "required uses param name",
			body: `{"strength":"weak","count":1}`,
			id:   "0",
			want: []string{"id is required"},
		},
		{
			name: "oneof",
			body: `{"strength":"mighty","count":1}`,
			id:   "1",
			want: []string{"strength must be one of: strong weak average"},
		},
		{
			name: "string bounds",
			body: `{"strength":"weak","note":"ab","count":1}`,
			id:   "1",
			want: []string{"note must be at least 3 characters"},
		},
		{
			name: "number bounds",
			body: `{"strength":"weak","count":0}`,
			id:   "1",
			want: []string{"count must be at least 1"},
		},
		{
			name: "every failure is reported",
			body: `{"note":"too long","count":0}`,
			id:   "0",
			want: []string{
				"id is required",
				"strength is required",
				"note must not exceed 5 characters",
				"count must be at least 1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bind(t, tt.body, tt.id)
			require.Error(t, err)

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, tt.want, httpErr.Errors)
		})
	}
}

func TestBindAndValidate_BindErrors(t *testing.T) {
	for name, tc := range map[string]struct{ body, id string }{
		"malformed json": {`{"strength":`, "1"},
		"wrong type":     {`{"strength":"weak","count":"two"}`, "1"},
		"bad path id":    {`{"strength":"weak","count":1}`, "abc"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := bind(t, tc.body, tc.id)

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			require.Len(t, httpErr.Errors, 1)
			assert.NotEmpty(t, httpErr.Errors[0])
		})
	}
}

func TestExtractValidationError_PlainError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, extractValidationError(errors.New("boom")))
}
