package search

import (
	"fmt"
	"strings"

	"github.com/altin/fault-finder/internal/model"
)

// Engine matches queries against fault records. It keeps no state, so one
// Engine can be shared by any number of callers.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

func (e *Engine) Search(query string, dataset []model.FaultRecord) []model.FaultRecord {
	return Search(query, dataset)
}

// Search returns the records whose fault code, brand or model contains the
// normalized query, in dataset order. A blank query matches nothing. The
// returned slice is always new and never nil.
func Search(query string, dataset []model.FaultRecord) []model.FaultRecord {
	results := []model.FaultRecord{}

	matcher, ok := buildMatcher(query)
	if !ok {
		return results
	}

	for _, r := range dataset {
		if matcher(r) {
			results = append(results, r)
		}
	}
	return results
}

// Normalize trims surrounding whitespace and lower-cases the query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func buildMatcher(query string) (func(model.FaultRecord) bool, bool) {
	pattern := Normalize(query)
	if pattern == "" {
		return nil, false
	}
	return func(r model.FaultRecord) bool {
		return strings.Contains(strings.ToLower(r.FaultCode), pattern) ||
			strings.Contains(strings.ToLower(r.Brand), pattern) ||
			strings.Contains(strings.ToLower(r.Model), pattern)
	}, true
}

// Summary is the headline shown above a result set. A single result is
// reported as an exact match purely on count.
func Summary(results []model.FaultRecord) string {
	switch len(results) {
	case 0:
		return "No results"
	case 1:
		return "Exact match found"
	default:
		return fmt.Sprintf("%d results found", len(results))
	}
}
