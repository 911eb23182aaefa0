package loki

import (
	"fmt"
	"sort"
	"strings"
)

// Sampling strategies for reducing high-cardinality log results.
const (
	StrategyPriority = "priority" // keep error-like lines first
	StrategyEven     = "even"     // evenly spaced samples per stream
	StrategyHead     = "head"     // first N entries
	StrategyTail     = "tail"     // last N entries
)

// SamplingInfo records how a result set was reduced.
type SamplingInfo struct {
	OriginalEntries int    `json:"original_entries"`
	SampledEntries  int    `json:"sampled_entries"`
	Strategy        string `json:"strategy"`
}

var errorPatterns = []string{"error", "exception", "fail", "fatal", "panic", "critical"}

// SampleResults reduces a query result to at most maxEntries log lines using
// the given strategy. Results already within budget are returned unchanged.
func SampleResults(result *QueryResult, maxEntries int, strategy string) *QueryResult {
	if result == nil || maxEntries <= 0 {
		return result
	}
	total := result.TotalEntries()
	if total <= maxEntries {
		return result
	}

	var sampled []Stream
	switch strategy {
	case StrategyEven:
		sampled = sampleEven(result.Data.Result, maxEntries)
	case StrategyHead:
		sampled = sampleHead(result.Data.Result, maxEntries)
	case StrategyTail:
		sampled = sampleTail(result.Data.Result, maxEntries)
	default:
		sampled = samplePriority(result.Data.Result, maxEntries)
		strategy = StrategyPriority
	}

	out := &QueryResult{
		Status: result.Status,
		Data: ResultData{
			ResultType: result.Data.ResultType,
			Result:     sampled,
			Stats:      result.Data.Stats,
		},
	}
	out.Sampling = &SamplingInfo{
		OriginalEntries: total,
		SampledEntries:  out.TotalEntries(),
		Strategy:        strategy,
	}
	return out
}

type flatEntry struct {
	timestamp string
	message   string
	labels    map[string]string
}

// samplePriority keeps lines matching error patterns first, fills the
// remaining budget with ordinary lines, and regroups by stream labels.
func samplePriority(streams []Stream, maxEntries int) []Stream {
	var errorEntries, otherEntries []flatEntry
	for _, s := range streams {
		for _, v := range s.Values {
			e := flatEntry{timestamp: v[0], message: v[1], labels: s.Stream}
			lower := strings.ToLower(v[1])
			matched := false
			for _, p := range errorPatterns {
				if strings.Contains(lower, p) {
					matched = true
					break
				}
			}
			if matched {
				errorEntries = append(errorEntries, e)
			} else {
				otherEntries = append(otherEntries, e)
			}
		}
	}

	kept := errorEntries
	if len(kept) > maxEntries {
		kept = kept[:maxEntries]
	}
	if remaining := maxEntries - len(kept); remaining > 0 && len(otherEntries) > 0 {
		if remaining > len(otherEntries) {
			remaining = len(otherEntries)
		}
		kept = append(kept, otherEntries[:remaining]...)
	}

	// Newest first, matching backward query ordering.
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].timestamp > kept[j].timestamp })

	// Regroup by stream labels, preserving first-seen group order.
	groups := map[string]*Stream{}
	var order []string
	for _, e := range kept {
		key := fmt.Sprintf("%v", e.labels)
		g, ok := groups[key]
		if !ok {
			g = &Stream{Stream: e.labels}
			groups[key] = g
			order = append(order, key)
		}
		g.Values = append(g.Values, [2]string{e.timestamp, e.message})
	}

	out := make([]Stream, 0, len(order))
	for _, key := range order {
		out = append(out, *groups[key])
	}
	return out
}

// sampleEven takes evenly spaced samples from each stream, splitting the
// budget equally between streams.
func sampleEven(streams []Stream, maxEntries int) []Stream {
	if len(streams) == 0 {
		return streams
	}
	perStream := maxEntries / len(streams)
	if perStream < 1 {
		perStream = 1
	}

	out := make([]Stream, 0, len(streams))
	for _, s := range streams {
		if len(s.Values) <= perStream {
			out = append(out, s)
			continue
		}
		step := float64(len(s.Values)) / float64(perStream)
		values := make([][2]string, 0, perStream)
		for i := 0; i < perStream; i++ {
			values = append(values, s.Values[int(float64(i)*step)])
		}
		out = append(out, Stream{Stream: s.Stream, Values: values})
	}
	return out
}

func sampleHead(streams []Stream, maxEntries int) []Stream {
	var out []Stream
	kept := 0
	for _, s := range streams {
		if kept >= maxEntries {
			break
		}
		take := len(s.Values)
		if take > maxEntries-kept {
			take = maxEntries - kept
		}
		out = append(out, Stream{Stream: s.Stream, Values: s.Values[:take]})
		kept += take
	}
	return out
}

func sampleTail(streams []Stream, maxEntries int) []Stream {
	var out []Stream
	kept := 0
	for _, s := range streams {
		if kept >= maxEntries {
			break
		}
		take := len(s.Values)
		if take > maxEntries-kept {
			take = maxEntries - kept
		}
		out = append(out, Stream{Stream: s.Stream, Values: s.Values[len(s.Values)-take:]})
		kept += take
	}
	return out
}
