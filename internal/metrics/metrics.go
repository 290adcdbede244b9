// Package metrics holds Prometheus instruments that are used across the
// onboarding service.  All collectors are registered with the global
// registry, so importing this package in main.go is enough to expose
// them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	TenantCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tenant_created_total",
			Help: "Cumulative number of tenants created by the organization step.",
		})

	TenantLoadTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tenant_load_total",
			Help: "Cumulative number of tenants loaded into the read cache.",
		})

	TenantLoadErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tenant_load_errors_total",
			Help: "Cumulative number of tenant cache load errors.",
		})

	TenantEvictTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tenant_evict_total",
			Help: "Cumulative number of tenants evicted from the read cache.",
		})

	ActiveTenants = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_tenants",
			Help: "Number of tenants currently held in the read cache.",
		})

	OptionFetchTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "option_fetch_total",
			Help: "Cumulative number of option fetches issued by resolvers.",
		})

	OptionFetchErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "option_fetch_errors_total",
			Help: "Cumulative number of option fetches that failed and degraded to empty.",
		})

	OptionFetchStaleTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "option_fetch_stale_total",
			Help: "Cumulative number of option fetch results dropped as stale.",
		})

	UploadStagedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "upload_staged_total",
			Help: "Cumulative number of files staged successfully.",
		})

	UploadRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "upload_rejected_total",
			Help: "Cumulative number of files rejected by staging validation.",
		})

	UploadRemovedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "upload_removed_total",
			Help: "Cumulative number of staged files removed after the settling delay.",
		})

	StepAdvanceTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "onboarding_step_advance_total",
			Help: "Cumulative number of successful step submissions, by step.",
		},
		[]string{"step"},
	)
)

func init() {
	prometheus.MustRegister(
		TenantCreatedTotal,
		TenantLoadTotal,
		TenantLoadErrorsTotal,
		TenantEvictTotal,
		ActiveTenants,
		OptionFetchTotal,
		OptionFetchErrorsTotal,
		OptionFetchStaleTotal,
		UploadStagedTotal,
		UploadRejectedTotal,
		UploadRemovedTotal,
		StepAdvanceTotal,
	)
}
