package render_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shortlink-org/shop/http/render"
)

func TestError(t *testing.T) {
	rr := httptest.NewRecorder()

	require.NoError(t, render.Error(rr, http.StatusInternalServerError, "Error fetching users"))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	require.JSONEq(t, `{"error":"Error fetching users"}`, rr.Body.String())
}

func TestRawIsVerbatim(t *testing.T) {
	rr := httptest.NewRecorder()
	payload := []byte(`[ {"id":1,"name":"John Doe"} ]`)

	require.NoError(t, render.Raw(rr, http.StatusOK, payload))

	require.Equal(t, payload, rr.Body.Bytes())
}

func TestJSONUnsupportedValue(t *testing.T) {
	rr := httptest.NewRecorder()

	require.Error(t, render.JSON(rr, http.StatusOK, make(chan int)))
}
