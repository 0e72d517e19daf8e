// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package rest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solveRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "statespace_solve_requests_total",
		Help: "Completed solve requests by problem, algorithm and outcome.",
	}, []string{"problem", "algorithm", "outcome"})

	nodesExpanded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "statespace_nodes_expanded_total",
		Help: "Nodes expanded while serving solve requests.",
	}, []string{"problem", "algorithm"})
)

func observe(problem, algorithm, outcome string, expanded int) {
	solveRequests.WithLabelValues(problem, algorithm, outcome).Inc()
	nodesExpanded.WithLabelValues(problem, algorithm).Add(float64(expanded))
}
