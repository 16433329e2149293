package tomltypes

import (
	"time"

	"github.com/oursky/isoduration/pkg/isoduration"
)

// Duration is a time.Duration written as an ISO 8601 duration, e.g. "PT10S".
type Duration struct{ time.Duration }

func (s Duration) MarshalText() ([]byte, error) {
	return []byte(isoduration.FormatStd(s.Duration)), nil
}

func (s *Duration) UnmarshalText(text []byte) error {
	var err error
	s.Duration, err = isoduration.ParseStd(string(text))
	return err
}

func (s *Duration) Value() *time.Duration {
	if s == nil {
		return nil
	}
	return &s.Duration
}
