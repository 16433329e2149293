package api

import (
	"github.com/oursky/isoduration/pkg/isoduration"
	"github.com/oursky/isoduration/pkg/utils/promutil"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	opParse  = "parse"
	opFormat = "format"

	resultOK = "ok"
)

type metrics struct {
	conversions *promutil.Counters
}

func newMetrics(r prometheus.Registerer) *metrics {
	m := &metrics{
		conversions: promutil.NewCounters(prometheus.Opts{
			Namespace: "isoduration",
			Subsystem: "api",
			Name:      "conversions_total",
			Help:      "Number of duration conversions by operation and result.",
		}, "op", "result"),
	}
	r.MustRegister(m.conversions)
	return m
}

func (m *metrics) record(op string, kind isoduration.Kind) {
	result := resultOK
	if kind != "" {
		result = string(kind)
	}
	m.conversions.Inc(op, result)
}
