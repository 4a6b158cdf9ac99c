package req

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authapi/internal/pkg/errs"
)

type testInput struct {
	Name string `json:"name"`
}

func bind(t *testing.T, contentType, body string) (*testInput, *errs.CustomError) {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	dst := &testInput{}
	return dst, BindJSON(w, r, dst)
}

func TestBindJSON(t *testing.T) {
	t.Parallel()

	dst, customErr := bind(t, "application/json", `{"name":"Ann"}`)
	require.Nil(t, customErr)
	assert.Equal(t, "Ann", dst.Name)
}

func TestBindJSONWrongContentType(t *testing.T) {
	t.Parallel()

	_, customErr := bind(t, "text/plain", `{"name":"Ann"}`)
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrUnsupportedMediaType, customErr.Code)
}

func TestBindJSONMalformedBody(t *testing.T) {
	t.Parallel()

	_, customErr := bind(t, "application/json", `{"name":`)
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrInvalidJSONFormat, customErr.Code)
}

func TestBindJSONUnknownField(t *testing.T) {
	t.Parallel()

	_, customErr := bind(t, "application/json", `{"name":"Ann","extra":true}`)
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrInvalidJSONFormat, customErr.Code)
}

func TestBindJSONTrailingContent(t *testing.T) {
	t.Parallel()

	_, customErr := bind(t, "application/json", `{"name":"Ann"}{"name":"Bob"}`)
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrExtraContentInBody, customErr.Code)
}
