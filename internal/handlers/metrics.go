package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	questionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "questions_created_total",
		Help:      "Questions added through the API",
	})

	questionsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "questions_deleted_total",
		Help:      "Questions removed through the API",
	})

	quizPicks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "quiz_picks_total",
		Help:      "Quiz requests by outcome",
	}, []string{"result"})
)
