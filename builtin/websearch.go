package builtin

import (
	"context"
	"fmt"

	"github.com/lmeynard/skillkit/skills"
)

const (
	defaultSearchResults = 5
	maxSearchResults     = 10
)

// WebSearch simulates a web search and returns mock results. It exists to
// exercise optional parameters and defaults without touching the network.
type WebSearch struct {
	skills.Base
}

// NewWebSearch creates the simulated web search skill.
func NewWebSearch() *WebSearch {
	return &WebSearch{}
}

func (w *WebSearch) Name() string { return "web_search" }

func (w *WebSearch) Description() string {
	return "Simulates web search functionality (returns mock results)"
}

func (w *WebSearch) Category() string { return "search" }

func (w *WebSearch) Tags() []string { return []string{"web", "search", "information"} }

func (w *WebSearch) Parameters() []skills.Parameter {
	return []skills.Parameter{
		{
			Name:        "query",
			Type:        skills.ParamString,
			Description: "The search query",
			Required:    true,
		},
		{
			Name:        "max_results",
			Type:        skills.ParamInteger,
			Description: "Maximum number of results to return",
			Required:    false,
			Default:     defaultSearchResults,
		},
	}
}

func (w *WebSearch) Execute(_ context.Context, args map[string]any) skills.Result {
	query, _ := args["query"].(string)

	max := defaultSearchResults
	if v, ok := args["max_results"]; ok {
		max = int(toFloat(v))
	}
	if max > maxSearchResults {
		max = maxSearchResults
	}
	if max < 0 {
		max = 0
	}

	results := make([]map[string]any, 0, max)
	for i := 0; i < max; i++ {
		results = append(results, map[string]any{
			"title":   fmt.Sprintf("Result %d for %q", i+1, query),
			"url":     fmt.Sprintf("https://example.com/result%d", i+1),
			"snippet": fmt.Sprintf("This is a mock search result snippet for query: %s", query),
		})
	}

	return skills.Result{
		Success: true,
		Data:    results,
		Metadata: map[string]any{
			"query":        query,
			"result_count": len(results),
			"simulated":    true,
		},
	}
}
