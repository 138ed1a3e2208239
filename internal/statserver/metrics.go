package statserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	connectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "unistat_connections_total",
		Help: "Connections accepted by the stats server.",
	})

	responsesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "unistat_responses_total",
		Help: "Responses fully written to clients.",
	})

	readErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "unistat_read_errors_total",
		Help: "Failed request reads. A read error does not block the response.",
	})

	writeErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "unistat_write_errors_total",
		Help: "Failed stats samples or response writes.",
	})

	memTotalKBGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "unistat_mem_total_kilobytes",
		Help: "Total physical memory from the last sample.",
	})

	memUsedKBGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "unistat_mem_used_kilobytes",
		Help: "Used physical memory from the last sample.",
	})
)
