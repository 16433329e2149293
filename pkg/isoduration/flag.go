package isoduration

import "github.com/spf13/pflag"

// Set implements pflag.Value and flag.Value.
func (d *Duration) Set(s string) error {
	return d.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (d *Duration) Type() string {
	return "isoDuration"
}

// FlagVar defines a flag that accepts ISO 8601 durations, storing the parsed
// value in p.
func FlagVar(fs *pflag.FlagSet, p *Duration, name string, value Duration, usage string) {
	*p = value
	fs.Var(p, name, usage)
}
