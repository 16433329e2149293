package main

import (
	"fmt"

	"github.com/oursky/isoduration/pkg/api"
	"github.com/oursky/isoduration/pkg/cmd"
	"github.com/oursky/isoduration/pkg/dashboard"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func initModules(logger *zap.Logger, config *Config) ([]cmd.Module, error) {
	registry := prometheus.NewPedanticRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	var modules []cmd.Module

	server, err := api.NewServer(logger, &config.API, registry)
	if err != nil {
		return nil, fmt.Errorf("cannot setup API server: %w", err)
	}
	modules = append(modules, server)

	dashboard := dashboard.NewServer(logger, &config.Dashboard, server)
	modules = append(modules, dashboard)

	return modules, nil
}
