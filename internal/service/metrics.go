package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SessionsStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "puzzlebox_sessions_started_total",
			Help: "Game sessions started",
		},
		[]string{"game"},
	)
	SessionsFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "puzzlebox_sessions_finished_total",
			Help: "Game sessions that reached a terminal status",
		},
		[]string{"game", "result"},
	)
	ActionsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "puzzlebox_actions_rejected_total",
			Help: "Player actions rejected as invalid or incomplete",
		},
		[]string{"game"},
	)
	HapticsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "puzzlebox_haptics_total",
			Help: "Haptic feedback events pushed to players",
		},
		[]string{"kind"},
	)
	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "puzzlebox_active_sessions",
			Help: "Sessions currently held in memory",
		},
	)
)

func init() {
	prometheus.MustRegister(SessionsStarted, SessionsFinished, ActionsRejected, HapticsSent, ActiveSessions)
}
