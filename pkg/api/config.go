package api

import (
	"time"

	"github.com/oursky/isoduration/pkg/utils/defaults"
	"github.com/oursky/isoduration/pkg/utils/tomltypes"
)

type Config struct {
	Disabled     bool                `toml:"disabled"`
	Addr         *string             `toml:"addr,omitempty" validate:"omitempty,tcp_addr"`
	AuthKeys     []string            `toml:"authKeys" validate:"required_if=Disabled false"`
	ReadTimeout  *tomltypes.Duration `toml:"readTimeout,omitempty"`
	WriteTimeout *tomltypes.Duration `toml:"writeTimeout,omitempty"`
	MaxBatch     *int                `toml:"maxBatch,omitempty" validate:"omitempty,min=1,max=10000"`
}

func (c *Config) GetAddr() string {
	return defaults.Value(c.Addr, "127.0.0.1:8002")
}

func (c *Config) GetReadTimeout() time.Duration {
	return defaults.Value(c.ReadTimeout.Value(), 10*time.Second)
}

func (c *Config) GetWriteTimeout() time.Duration {
	return defaults.Value(c.WriteTimeout.Value(), 10*time.Second)
}

func (c *Config) GetMaxBatch() int {
	return defaults.Value(c.MaxBatch, 100)
}
