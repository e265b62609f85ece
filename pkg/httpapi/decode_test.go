package httpapi_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telvana/tsr-tracker/pkg/httpapi"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func TestDecode_JSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":"engineer@example.com","password":"s3cret"}`))
	r.Header.Set("Content-Type", "application/json")

	var dto loginBody
	require.NoError(t, httpapi.Decode(r, &dto))
	assert.Equal(t, "engineer@example.com", dto.Email)
	assert.Equal(t, "s3cret", dto.Password)
}

func TestDecode_Form(t *testing.T) {
	values := url.Values{}
	values.Set("Email", "engineer@example.com")
	values.Set("Password", "s3cret")
	r := httptest.NewRequest("POST", "/login", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var dto loginBody
	require.NoError(t, httpapi.Decode(r, &dto))
	assert.Equal(t, "engineer@example.com", dto.Email)
	assert.Equal(t, "s3cret", dto.Password)
}

func TestDecode_InvalidJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/login", strings.NewReader("{"))
	r.Header.Set("Content-Type", "application/json")

	var dto loginBody
	assert.Error(t, httpapi.Decode(r, &dto))
}
