// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vojtechpavlu/StateSpaceFW/pkg/domains/eightpuzzle"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/domains/hanoi"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/problem"
)

type testAPI struct {
	*API
	Router *gin.Engine
}

func newTestAPI() *testAPI {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	a := New(problem.NewRegistry(eightpuzzle.Problem{}, hanoi.Problem{}), r)
	return &testAPI{API: a, Router: r}
}

func do(t *testing.T, a *testAPI, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = strings.NewReader(string(b))
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	a.Router.ServeHTTP(w, req)
	return w
}

func TestAPI_Problems(t *testing.T) {
	a := newTestAPI()
	w := do(t, a, "GET", BasePath+"/problems", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var infos []ProblemInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &infos))
	require.Len(t, infos, 2)
	assert.Equal(t, "eightpuzzle", infos[0].Name)
	assert.Equal(t, "hanoi", infos[1].Name)
	assert.NotEmpty(t, infos[0].Description)
}

func TestAPI_Algorithms(t *testing.T) {
	a := newTestAPI()
	w := do(t, a, "GET", BasePath+"/algorithms", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var names []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &names))
	assert.Equal(t, []string{"astar", "best", "bfs", "dfs", "iddfs", "random"}, names)
}

func TestAPI_Solve(t *testing.T) {
	a := newTestAPI()
	w := do(t, a, "POST", BasePath+"/solve", SolveRequest{
		Problem:   "hanoi",
		Algorithm: "bfs",
		Config:    map[string]string{"disks": "3", "sticks": "3"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp SolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Reason)
	assert.Equal(t, "breadth-first search", resp.Algorithm)
	assert.Len(t, resp.Operators, 7)
	assert.Positive(t, resp.Expanded)
	assert.NotEmpty(t, resp.Initial)
	assert.NotEmpty(t, resp.Goal)
}

func TestAPI_SolveFailure(t *testing.T) {
	// Random walk on a hanoi board with a tight step bound: a normal failure
	// outcome, still a 200.
	a := newTestAPI()
	w := do(t, a, "POST", BasePath+"/solve", SolveRequest{
		Problem:   "hanoi",
		Algorithm: "random",
		Config:    map[string]string{"disks": "5"},
		MaxSteps:  1,
		Seed:      ptr(int64(1)),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp SolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "no solution within 1 steps", resp.Reason)
	assert.Empty(t, resp.Operators)
}

func TestAPI_SolveBadRequests(t *testing.T) {
	a := newTestAPI()
	for _, x := range []struct {
		name string
		req  SolveRequest
	}{
		{name: "unknown problem", req: SolveRequest{Problem: "chess", Algorithm: "bfs"}},
		{name: "unknown algorithm", req: SolveRequest{Problem: "hanoi", Algorithm: "minimax"}},
		{name: "missing algorithm", req: SolveRequest{Problem: "hanoi"}},
		{name: "bad parameter", req: SolveRequest{
			Problem: "hanoi", Algorithm: "bfs",
			Config: map[string]string{"disks": "many"},
		}},
	} {
		t.Run(x.name, func(t *testing.T) {
			w := do(t, a, "POST", BasePath+"/solve", x.req)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func ptr[T any](v T) *T { return &v }
