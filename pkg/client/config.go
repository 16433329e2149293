package client

import (
	"time"

	"github.com/oursky/isoduration/pkg/utils/defaults"
	"github.com/oursky/isoduration/pkg/utils/tomltypes"
)

type Config struct {
	URL     string              `toml:"url" validate:"required,url"`
	AuthKey string              `toml:"authKey" validate:"required"`
	RPS     *float64            `toml:"rps,omitempty" validate:"omitempty,gt=0"`
	Burst   *int                `toml:"burst,omitempty" validate:"omitempty,min=1"`
	Timeout *tomltypes.Duration `toml:"timeout,omitempty"`
}

func (c *Config) GetRPS() float64 {
	return defaults.Value(c.RPS, 10)
}

func (c *Config) GetBurst() int {
	return defaults.Value(c.Burst, 10)
}

func (c *Config) GetTimeout() time.Duration {
	return defaults.Value(c.Timeout.Value(), 10*time.Second)
}
