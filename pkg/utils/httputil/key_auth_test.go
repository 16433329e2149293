package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestKeyAuth(t *testing.T) {
	handler := UseKeyAuth([]string{"a", "b"}, http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		header string
		status int
	}{
		{"", http.StatusUnauthorized},
		{"Bearer", http.StatusUnauthorized},
		{"Bearer c", http.StatusUnauthorized},
		{"Basic a", http.StatusUnauthorized},
		{"Bearer a", http.StatusNoContent},
		{"bearer b", http.StatusNoContent},
	}

	for _, test := range tests {
		req := httptest.NewRequest("GET", "/", nil)
		if test.header != "" {
			req.Header.Set("Authorization", test.header)
		}
		rw := httptest.NewRecorder()
		handler.ServeHTTP(rw, req)
		assert.Equal(t, test.status, rw.Code)
	}
}

func TestCheckStatus(t *testing.T) {
	rw := httptest.NewRecorder()
	rw.WriteHeader(http.StatusTeapot)
	rw.WriteString("  short and stout\n")

	err := CheckStatus(rw.Result())
	assert.Equal(t, "unexpected status code: 418: short and stout", err.Error())
	assert.Equal(t, nil, CheckStatus(&http.Response{StatusCode: 204}))
}
