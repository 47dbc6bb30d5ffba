package arena

import "github.com/prometheus/client_golang/prometheus"

// MetricsSource is anything able to produce an allocator metrics snapshot.
type MetricsSource interface {
	Metrics() AllocatorMetrics
}

var (
	bytesInUseDesc = prometheus.NewDesc(
		"arena_allocator_bytes_in_use",
		"Bytes handed out by the allocator.",
		[]string{"allocator"}, nil,
	)
	capacityDesc = prometheus.NewDesc(
		"arena_allocator_capacity_bytes",
		"Total capacity of all batches held by the allocator.",
		[]string{"allocator"}, nil,
	)
	batchesDesc = prometheus.NewDesc(
		"arena_allocator_batches",
		"Number of batches held by the allocator.",
		[]string{"allocator"}, nil,
	)
	referencesDesc = prometheus.NewDesc(
		"arena_allocator_references",
		"Number of handles sharing the allocator.",
		[]string{"allocator"}, nil,
	)
	deallocatedDesc = prometheus.NewDesc(
		"arena_allocator_deallocated_bytes",
		"Bytes handed back to the allocator since the last reset.",
		[]string{"allocator"}, nil,
	)
)

// Collector exposes the metrics of a single allocator.
type Collector struct {
	name string
	src  MetricsSource
}

var _ prometheus.Collector = &Collector{}

// NewCollector returns a collector reporting src under the given allocator name.
func NewCollector(name string, src MetricsSource) *Collector {
	return &Collector{name: name, src: src}
}

func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- bytesInUseDesc
	descs <- capacityDesc
	descs <- batchesDesc
	descs <- referencesDesc
	descs <- deallocatedDesc
}

func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	m := c.src.Metrics()
	metrics <- prometheus.MustNewConstMetric(bytesInUseDesc, prometheus.GaugeValue, float64(m.SizeInUse), c.name)
	metrics <- prometheus.MustNewConstMetric(capacityDesc, prometheus.GaugeValue, float64(m.Capacity), c.name)
	metrics <- prometheus.MustNewConstMetric(batchesDesc, prometheus.GaugeValue, float64(m.NumBatches), c.name)
	metrics <- prometheus.MustNewConstMetric(referencesDesc, prometheus.GaugeValue, float64(m.References), c.name)
	metrics <- prometheus.MustNewConstMetric(deallocatedDesc, prometheus.GaugeValue, float64(m.DeallocatedBytes), c.name)
}
