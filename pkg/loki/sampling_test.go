package loki

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeResult(streams ...Stream) *QueryResult {
	return &QueryResult{
		Status: "success",
		Data:   ResultData{ResultType: "streams", Result: streams},
	}
}

func makeStream(labels map[string]string, n int, prefix string) Stream {
	s := Stream{Stream: labels}
	for i := 0; i < n; i++ {
		ts := fmt.Sprintf("%019d", 1700000000000000000+int64(i))
		s.Values = append(s.Values, [2]string{ts, fmt.Sprintf("%s line %d", prefix, i)})
	}
	return s
}

func TestSampleResults_NoSamplingNeeded(t *testing.T) {
	res := makeResult(makeStream(map[string]string{"svc": "a"}, 10, "info"))
	out := SampleResults(res, 100, StrategyEven)
	assert.Same(t, res, out)
	assert.Nil(t, out.Sampling)
}

func TestSampleResults_Priority(t *testing.T) {
	normal := makeStream(map[string]string{"svc": "a"}, 50, "info")
	errs := makeStream(map[string]string{"svc": "b"}, 30, "ERROR: disk fail")

	out := SampleResults(makeResult(normal, errs), 40, StrategyPriority)
	require.NotNil(t, out.Sampling)
	assert.Equal(t, 80, out.Sampling.OriginalEntries)
	assert.Equal(t, 40, out.Sampling.SampledEntries)
	assert.Equal(t, StrategyPriority, out.Sampling.Strategy)

	// All 30 error lines survive; the rest of the budget is filled with
	// ordinary lines.
	errorCount := 0
	for _, s := range out.Data.Result {
		for _, v := range s.Values {
			if strings.Contains(strings.ToLower(v[1]), "error") {
				errorCount++
			}
		}
	}
	assert.Equal(t, 30, errorCount)
}

func TestSampleResults_Even(t *testing.T) {
	a := makeStream(map[string]string{"svc": "a"}, 100, "a")
	b := makeStream(map[string]string{"svc": "b"}, 100, "b")

	out := SampleResults(makeResult(a, b), 20, StrategyEven)
	require.Len(t, out.Data.Result, 2)
	assert.Len(t, out.Data.Result[0].Values, 10)
	assert.Len(t, out.Data.Result[1].Values, 10)
}

func TestSampleResults_Head(t *testing.T) {
	a := makeStream(map[string]string{"svc": "a"}, 30, "a")
	b := makeStream(map[string]string{"svc": "b"}, 30, "b")

	out := SampleResults(makeResult(a, b), 40, StrategyHead)
	assert.Equal(t, 40, out.TotalEntries())
	assert.Len(t, out.Data.Result[0].Values, 30)
	assert.Len(t, out.Data.Result[1].Values, 10)
	assert.Equal(t, "b line 0", out.Data.Result[1].Values[0][1])
}

func TestSampleResults_Tail(t *testing.T) {
	a := makeStream(map[string]string{"svc": "a"}, 30, "a")

	out := SampleResults(makeResult(a), 10, StrategyTail)
	require.Len(t, out.Data.Result, 1)
	assert.Len(t, out.Data.Result[0].Values, 10)
	assert.Equal(t, "a line 20", out.Data.Result[0].Values[0][1])
	assert.Equal(t, "a line 29", out.Data.Result[0].Values[9][1])
}
