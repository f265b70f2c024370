package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BookingsCreated The total number of bookings created (counter)
	BookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "railbooking",
			Name:      "bookings_created_total",
			Help:      "The total number of bookings created",
		},
	)

	// BookingsRejected The total number of booking requests rejected by schedule validation (counter)
	BookingsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "railbooking",
			Name:      "bookings_rejected_total",
			Help:      "The total number of booking requests rejected by schedule validation",
		},
		[]string{"reason"},
	)

	// BookingsCancelled The total number of bookings cancelled (counter)
	BookingsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "railbooking",
			Name:      "bookings_cancelled_total",
			Help:      "The total number of bookings cancelled",
		},
	)

	// TrainSearches The total number of train searches by outcome (counter)
	TrainSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "railbooking",
			Name:      "train_searches_total",
			Help:      "The total number of train searches",
		},
		[]string{"result"},
	)
)
