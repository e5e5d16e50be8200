package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	UsersCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_created_total",
			Help: "Total users created",
		},
	)
	BlogsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "blogs_created_total",
			Help: "Total blogs created",
		},
	)
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total login attempts",
		},
		[]string{"outcome"}, // ok|rejected
	)
)

var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(UsersCreatedTotal)
	prometheus.MustRegister(BlogsCreatedTotal)
	prometheus.MustRegister(LoginsTotal)
}
