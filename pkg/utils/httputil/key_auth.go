package httputil

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/oursky/isoduration/pkg/utils/array"
)

type KeyAuthMiddleware struct {
	next http.Handler
	keys []string
}

func UseKeyAuth(keys []string, next http.Handler) *KeyAuthMiddleware {
	return &KeyAuthMiddleware{
		next: next,
		keys: array.Unique(keys),
	}
}

func (m *KeyAuthMiddleware) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	bearer, key, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(bearer, "bearer") || !m.accepts(key) {
		rw.Header().Set("WWW-Authenticate", "Bearer")
		RespondJSONStatus(rw, http.StatusUnauthorized, map[string]string{"error": "invalid key"})
		return
	}

	m.next.ServeHTTP(rw, r)
}

func (m *KeyAuthMiddleware) accepts(key string) bool {
	c := 0
	for _, k := range m.keys {
		c += subtle.ConstantTimeCompare([]byte(k), []byte(key))
	}
	return c > 0
}
