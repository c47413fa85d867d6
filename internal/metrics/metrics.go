package metrics

import (
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"net/http"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "core_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	StoreReadsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "core_store_reads_total",
			Help: "Total number of store key reads.",
		},
	)
	StoreWritesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "core_store_writes_total",
			Help: "Total number of store key writes.",
		},
	)
	JobsCreatedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "core_jobs_created_total",
			Help: "Total number of job posts created.",
		},
	)
	ApplicationsSubmittedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "core_applications_submitted_total",
			Help: "Total number of job applications submitted.",
		},
	)
	LoginsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "core_logins_total",
			Help: "Total number of successful logins.",
		},
	)
	RegistrationsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "core_registrations_total",
			Help: "Total number of successful registrations.",
		},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(StoreReadsCounter)
	prometheus.MustRegister(StoreWritesCounter)
	prometheus.MustRegister(JobsCreatedCounter)
	prometheus.MustRegister(ApplicationsSubmittedCounter)
	prometheus.MustRegister(LoginsCounter)
	prometheus.MustRegister(RegistrationsCounter)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), nil))
	}()
}
