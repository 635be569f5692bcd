package validatex

import (
	"net/http"
	"testing"

	"github.com/Abraxas-365/careersync/pkg/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"contactEmail" validate:"omitempty,email"`
	Status string `json:"status" validate:"omitempty,oneof=applied interview offer"`
}

func TestStructValid(t *testing.T) {
	assert.NoError(t, Struct(sample{Name: "x", Email: "a@b.co", Status: "offer"}))
	assert.NoError(t, Struct(sample{Name: "x"}))
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	err := Struct(sample{Email: "nope", Status: "ghosted"})
	require.Error(t, err)

	e, ok := errx.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, e.HTTPStatus)
	assert.Equal(t, "name is required", e.Details["name"])
	assert.Equal(t, "contactEmail must be a valid email address", e.Details["contactEmail"])
	assert.Equal(t, "status must be one of: applied, interview, offer", e.Details["status"])
	assert.Contains(t, e.Reason, "name is required")
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("email", "jane@example.com", "email"))

	err := Var("email", "jane", "email")
	e, ok := errx.As(err)
	require.True(t, ok)
	assert.Equal(t, "email must be a valid email address", e.Details["email"])
}
