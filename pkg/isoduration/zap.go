package isoduration

import (
	"time"

	"go.uber.org/zap"
)

// Field returns a zap field holding d in ISO 8601 form.
func Field(key string, d Duration) zap.Field {
	return zap.String(key, Format(d))
}

// StdField is Field for a time.Duration.
func StdField(key string, d time.Duration) zap.Field {
	return zap.String(key, FormatStd(d))
}
