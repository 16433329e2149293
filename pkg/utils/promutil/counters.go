package promutil

import (
	"fmt"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Counters is a collector of monotonic counts keyed by label values. Label
// values are given in the order of the label names.
type Counters struct {
	desc *MetricDesc

	lock   *sync.RWMutex
	counts map[string]*count
}

type count struct {
	labelValues []string
	value       uint64
}

func NewCounters(opts prometheus.Opts, labelNames ...string) *Counters {
	return &Counters{
		desc:   NewMetricDesc(opts, labelNames...),
		lock:   new(sync.RWMutex),
		counts: make(map[string]*count),
	}
}

func (c *Counters) Inc(labelValues ...string) {
	if len(labelValues) != len(c.desc.labelNames) {
		panic(fmt.Sprintf("promutil: got %d label values for %d labels", len(labelValues), len(c.desc.labelNames)))
	}
	key := strings.Join(labelValues, "\xff")

	c.lock.Lock()
	defer c.lock.Unlock()

	entry, ok := c.counts[key]
	if !ok {
		entry = &count{labelValues: append([]string(nil), labelValues...)}
		c.counts[key] = entry
	}
	entry.value++
}

func (c *Counters) Value(labelValues ...string) uint64 {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if entry, ok := c.counts[strings.Join(labelValues, "\xff")]; ok {
		return entry.value
	}
	return 0
}

func (c *Counters) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc.Desc()
}

func (c *Counters) Collect(ch chan<- prometheus.Metric) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	for _, entry := range c.counts {
		ch <- c.desc.Counter(float64(entry.value), entry.labelValues...)
	}
}
