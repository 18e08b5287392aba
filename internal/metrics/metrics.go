// Package metrics holds Prometheus instruments that are used across the
// theming layer.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ThemesRegistered = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "themes_registered",
			Help: "Number of themes currently present in the registry.",
		})

	ThemeLoadTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "theme_load_total",
			Help: "Cumulative number of theme descriptors successfully read.",
		})

	ThemeLoadErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "theme_load_errors_total",
			Help: "Cumulative number of theme directories skipped due to errors.",
		})

	RegistryRefreshTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "registry_refresh_total",
			Help: "Cumulative number of registry rebuilds.",
		})

	TemplateRenderTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "template_render_total",
			Help: "Cumulative number of template executions.",
		})

	StaticRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "theme_static_requests_total",
			Help: "Cumulative number of theme static-asset requests served.",
		})
)

func init() {
	prometheus.MustRegister(
		ThemesRegistered,
		ThemeLoadTotal,
		ThemeLoadErrorsTotal,
		RegistryRefreshTotal,
		TemplateRenderTotal,
		StaticRequestsTotal,
	)
}
