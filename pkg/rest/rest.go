// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

// Package rest implements a small REST API for solving named problems.
//
// Because unbounded strategies (iddfs, random) may never terminate on unreachable
// goals, the server imposes default depth and step bounds on them; a request may
// tighten the bounds but an unbounded server-side search is never started.
package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vojtechpavlu/StateSpaceFW/internal/pkg/logging"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/problem"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/search"
)

var log = logging.Log()

// BasePath is the versioned base path of the API.
const BasePath = "/api/v1alpha1"

// Server-side bounds applied to strategies with no failure terminal of their own.
const (
	defaultMaxDepth = 512
	defaultMaxSteps = 1_000_000
)

// API registers the problem-solving handlers with a gin engine.
type API struct {
	Registry *problem.Registry
}

// New API instance, registers handlers with a gin Engine.
func New(registry *problem.Registry, r *gin.Engine) *API {
	a := &API{Registry: registry}
	v := r.Group(BasePath)
	v.GET("/problems", a.Problems)
	v.GET("/algorithms", a.AlgorithmNames)
	v.POST("/solve", a.Solve)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return a
}

// Problems handles GET /problems: list the solvable problems.
func (a *API) Problems(c *gin.Context) {
	var infos Array[ProblemInfo]
	for _, p := range a.Registry.All() {
		infos = append(infos, ProblemInfo{Name: p.Name(), Description: p.Description()})
	}
	c.JSON(http.StatusOK, infos)
}

// AlgorithmNames handles GET /algorithms: list the algorithm registry names.
func (a *API) AlgorithmNames(c *gin.Context) {
	c.JSON(http.StatusOK, Array[string](search.Algorithms()))
}

// Solve handles POST /solve: build the problem instance, run the algorithm, report
// the outcome. Unknown names and bad parameters are 400s, a failed search is a normal
// 200 response with success=false.
func (a *API) Solve(c *gin.Context) {
	var req SolveRequest
	if err := c.BindJSON(&req); err != nil {
		return // BindJSON has already written the error status.
	}
	p, err := a.Registry.Get(req.Problem)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	space, err := p.Space(problem.Config(req.Config))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	solver, err := search.New(req.Algorithm, space, a.options(&req)...)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	outcome, err := solver.Solve()
	if err != nil {
		// A defect in a problem domain, not a failed search.
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		observe(req.Problem, req.Algorithm, "error", 0)
		return
	}
	result := "failure"
	if outcome.Success() {
		result = "success"
	}
	observe(req.Problem, req.Algorithm, result, outcome.Expanded)
	log.V(2).Info("solved", "problem", req.Problem, "algorithm", outcome.Algorithm, "outcome", result, "expanded", outcome.Expanded)

	resp := SolveResponse{
		Algorithm: outcome.Algorithm,
		Success:   outcome.Success(),
		Reason:    outcome.Reason,
		Expanded:  outcome.Expanded,
		Initial:   p.Render(space.Initial().State()),
		Goal:      p.Render(space.Goal().State()),
	}
	for _, op := range outcome.Operators() {
		resp.Operators = append(resp.Operators, op.Name())
	}
	c.JSON(http.StatusOK, resp)
}

// options translates request knobs into solver options, bounding unbounded strategies.
func (a *API) options(req *SolveRequest) []search.Option {
	var opts []search.Option
	if req.Revisits {
		opts = append(opts, search.Revisits())
	}
	if req.Increment > 0 {
		opts = append(opts, search.Increment(req.Increment))
	}
	if req.Seed != nil {
		opts = append(opts, search.Seed(*req.Seed))
	}
	maxDepth := req.MaxDepth
	if maxDepth <= 0 || maxDepth > defaultMaxDepth {
		maxDepth = defaultMaxDepth
	}
	maxSteps := req.MaxSteps
	if maxSteps <= 0 || maxSteps > defaultMaxSteps {
		maxSteps = defaultMaxSteps
	}
	return append(opts, search.MaxDepth(maxDepth), search.MaxSteps(maxSteps))
}
