package dashboard

import (
	"time"

	"github.com/oursky/isoduration/pkg/utils/defaults"
	"github.com/oursky/isoduration/pkg/utils/tomltypes"
)

type Config struct {
	Disabled     bool                `toml:"disabled"`
	Addr         *string             `toml:"addr,omitempty" validate:"omitempty,tcp_addr"`
	Title        *string             `toml:"title,omitempty" validate:"omitempty,max=80"`
	AssetsDir    *string             `toml:"assetsDir,omitempty" validate:"omitempty,dir"`
	ReadTimeout  *tomltypes.Duration `toml:"readTimeout,omitempty"`
	WriteTimeout *tomltypes.Duration `toml:"writeTimeout,omitempty"`
}

func (c *Config) GetAddr() string {
	return defaults.Value(c.Addr, "127.0.0.1:8000")
}

func (c *Config) GetTitle() string {
	return defaults.Value(c.Title, "ISO 8601 durations")
}

func (c *Config) GetReadTimeout() time.Duration {
	return defaults.Value(c.ReadTimeout.Value(), 10*time.Second)
}

func (c *Config) GetWriteTimeout() time.Duration {
	return defaults.Value(c.WriteTimeout.Value(), 10*time.Second)
}
