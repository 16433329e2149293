package main

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/oursky/isoduration/pkg/api"
	"github.com/oursky/isoduration/pkg/dashboard"
	"github.com/oursky/isoduration/pkg/isoduration"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	API       api.Config       `toml:"api"`
	Dashboard dashboard.Config `toml:"dashboard"`
}

func NewConfig(path string) (*Config, error) {
	var config Config
	if path != "" {
		if _, err := toml.DecodeFile(path, &config); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := isoduration.RegisterValidation(validate); err != nil {
		return nil, fmt.Errorf("cannot register validation: %w", err)
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}
