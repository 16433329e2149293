package isoduration

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

var (
	durationType    = reflect.TypeOf(Duration{})
	stdDurationType = reflect.TypeOf(time.Duration(0))
)

// DecodeHook returns a mapstructure decode hook that parses ISO 8601 strings
// into Duration and time.Duration fields. Other conversions pass through
// untouched, so it composes with mapstructure.ComposeDecodeHookFunc.
func DecodeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		switch to {
		case durationType:
			return Parse(data.(string))
		case stdDurationType:
			return ParseStd(data.(string))
		}
		return data, nil
	}
}
