package cortex

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSeries(name string, vals ...float64) Series {
	s := Series{Metric: map[string]string{"__name__": name}}
	for i, v := range vals {
		s.Values = append(s.Values, Sample{
			Timestamp: float64(1700000000 + i*60),
			Value:     fmt.Sprintf("%g", v),
		})
	}
	return s
}

func TestAggregateResults_UnderLimitAddsSummaries(t *testing.T) {
	res := &QueryResult{
		Status: "success",
		Data:   ResultData{ResultType: "matrix", Result: []Series{makeSeries("up", 1, 2, 3)}},
	}

	out := AggregateResults(res, "avg", 50)
	assert.Nil(t, out.Aggregation)

	sum := out.Data.Result[0].Summary
	require.NotNil(t, sum)
	assert.Equal(t, 1.0, *sum.Min)
	assert.Equal(t, 3.0, *sum.Max)
	assert.Equal(t, 2.0, *sum.Avg)
	assert.Equal(t, 3.0, *sum.Latest)
	assert.Equal(t, 3, sum.Count)
}

func TestAggregateResults_KeepsTopSeries(t *testing.T) {
	var series []Series
	for i := 0; i < 10; i++ {
		series = append(series, makeSeries(fmt.Sprintf("s%d", i), float64(i), float64(i)))
	}
	res := &QueryResult{Status: "success", Data: ResultData{Result: series}}

	out := AggregateResults(res, "avg", 3)
	require.NotNil(t, out.Aggregation)
	assert.Equal(t, 10, out.Aggregation.OriginalSeries)
	assert.Equal(t, 3, out.Aggregation.KeptSeries)
	assert.Equal(t, "avg", out.Aggregation.Method)

	// Highest averages are preserved.
	assert.Equal(t, "s9", out.Data.Result[0].Metric["__name__"])
	assert.Equal(t, "s8", out.Data.Result[1].Metric["__name__"])
	assert.Equal(t, "s7", out.Data.Result[2].Metric["__name__"])
}

func TestAggregateResults_MinMethodRanksLowFirst(t *testing.T) {
	res := &QueryResult{Data: ResultData{Result: []Series{
		makeSeries("high", 100, 100),
		makeSeries("low", 1, 1),
		makeSeries("mid", 50, 50),
	}}}

	out := AggregateResults(res, "min", 1)
	require.Len(t, out.Data.Result, 1)
	assert.Equal(t, "low", out.Data.Result[0].Metric["__name__"])
}

func TestAggregateResults_EmptySeriesSummary(t *testing.T) {
	s := Series{Metric: map[string]string{"__name__": "nan"}, Values: []Sample{{Timestamp: 1, Value: "NaN"}}}
	res := &QueryResult{Data: ResultData{Result: []Series{s}}}

	out := AggregateResults(res, "avg", 50)
	sum := out.Data.Result[0].Summary
	require.NotNil(t, sum)
	assert.Nil(t, sum.Min)
	assert.Equal(t, 0, sum.Count)
}

func TestDetectAnomalies(t *testing.T) {
	// Flat series with one big spike.
	s := makeSeries("spiky", 10, 10, 10, 10, 10, 10, 10, 10, 10, 100)
	res := &QueryResult{Data: ResultData{Result: []Series{s}}}

	anomalies := DetectAnomalies(res, 2.0)
	require.Len(t, anomalies, 1)
	assert.Equal(t, 100.0, anomalies[0].Value)
	assert.Greater(t, anomalies[0].ZScore, 2.0)
	assert.Equal(t, "spiky", anomalies[0].Metric["__name__"])
}

func TestDetectAnomalies_SkipsFlatAndShortSeries(t *testing.T) {
	res := &QueryResult{Data: ResultData{Result: []Series{
		makeSeries("flat", 5, 5, 5, 5),
		makeSeries("short", 1, 100),
	}}}
	assert.Empty(t, DetectAnomalies(res, 2.0))
}

func TestRateOfChange(t *testing.T) {
	s := makeSeries("counter", 0, 60, 120)
	rate, ok := RateOfChange(s.Values)
	require.True(t, ok)
	assert.InDelta(t, 1.0, rate, 1e-9)

	_, ok = RateOfChange(s.Values[:1])
	assert.False(t, ok)
}
