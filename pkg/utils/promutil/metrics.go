package promutil

import "github.com/prometheus/client_golang/prometheus"

// MetricDesc describes a metric family with variable labels.
type MetricDesc struct {
	desc       *prometheus.Desc
	labelNames []string
}

func NewMetricDesc(opts prometheus.Opts, labelNames ...string) *MetricDesc {
	fqName := prometheus.BuildFQName(opts.Namespace, opts.Subsystem, opts.Name)
	return &MetricDesc{
		desc:       prometheus.NewDesc(fqName, opts.Help, labelNames, opts.ConstLabels),
		labelNames: labelNames,
	}
}

func (d *MetricDesc) Desc() *prometheus.Desc {
	return d.desc
}

func (d *MetricDesc) Counter(value float64, labelValues ...string) prometheus.Metric {
	return prometheus.MustNewConstMetric(d.desc, prometheus.CounterValue, value, labelValues...)
}
