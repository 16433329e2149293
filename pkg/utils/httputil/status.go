package httputil

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxErrorBody = 512

type ErrHTTPStatus struct {
	Code    int
	Message string
}

func (s *ErrHTTPStatus) Error() string {
	if s.Message == "" {
		return fmt.Sprintf("unexpected status code: %d", s.Code)
	}
	return fmt.Sprintf("unexpected status code: %d: %s", s.Code, s.Message)
}

// CheckStatus returns an *ErrHTTPStatus for non-2xx responses, carrying the
// start of the response body.
func CheckStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &ErrHTTPStatus{
		Code:    resp.StatusCode,
		Message: strings.TrimSpace(string(body)),
	}
}
