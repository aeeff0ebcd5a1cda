package bootstrap

import (
	"parking-system/internal/handler/middleware"
	"parking-system/internal/infra/metrics"
	"parking-system/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		fx.Annotate(
			metrics.NewPrometheusRecorder,
			fx.As(new(shared.MetricsRecorder)),
		),
		middleware.NewHTTPMetrics,
	),
)

// NoopMetricsModule serves binaries that expose no /metrics endpoint.
var NoopMetricsModule = fx.Module("metrics",
	fx.Provide(
		func() shared.MetricsRecorder { return metrics.NoopRecorder{} },
	),
)

// NewRegistry keeps each fx app on its own registry so collectors never clash.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
