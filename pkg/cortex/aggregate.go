package cortex

import (
	"math"
	"sort"
)

// DefaultMaxSeries bounds how many series survive aggregation before the
// result is handed to the agent.
const DefaultMaxSeries = 50

// AggregateResults reduces a query result to at most maxSeries, ranking by
// the given method ("avg", "max", "min", "sum", "latest"), and attaches
// per-series summary statistics either way.
func AggregateResults(result *QueryResult, method string, maxSeries int) *QueryResult {
	if result == nil {
		return nil
	}
	if method == "" {
		method = "avg"
	}
	if maxSeries <= 0 {
		maxSeries = DefaultMaxSeries
	}

	if len(result.Data.Result) <= maxSeries {
		addSummaries(result)
		return result
	}

	type scored struct {
		score  float64
		series Series
	}
	all := make([]scored, 0, len(result.Data.Result))
	for _, s := range result.Data.Result {
		vals := s.numericValues()
		var score float64
		switch {
		case len(vals) == 0:
			score = 0
		case method == "max" || method == "sum":
			score = maxOf(vals)
		case method == "min":
			// Negative so lower values rank higher.
			score = -minOf(vals)
		default: // avg, latest
			score = avgOf(vals)
		}
		all = append(all, scored{score, s})
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].score > all[j].score })

	kept := make([]Series, 0, maxSeries)
	for _, s := range all[:maxSeries] {
		kept = append(kept, s.series)
	}

	out := &QueryResult{
		Status: result.Status,
		Data:   ResultData{ResultType: result.Data.ResultType, Result: kept},
		Aggregation: &AggregationInfo{
			OriginalSeries: len(result.Data.Result),
			KeptSeries:     len(kept),
			Method:         method,
		},
	}
	addSummaries(out)
	return out
}

func addSummaries(result *QueryResult) {
	for i := range result.Data.Result {
		s := &result.Data.Result[i]
		vals := s.numericValues()
		if len(vals) == 0 {
			s.Summary = &SeriesSummary{Count: 0}
			continue
		}
		mn, mx, avg := minOf(vals), maxOf(vals), avgOf(vals)
		latest := vals[len(vals)-1]
		s.Summary = &SeriesSummary{
			Min:    &mn,
			Max:    &mx,
			Avg:    &avg,
			Latest: &latest,
			Count:  len(vals),
		}
	}
}

// Anomaly is one data point deviating beyond the z-score threshold.
type Anomaly struct {
	Timestamp float64           `json:"timestamp"`
	Value     float64           `json:"value"`
	ZScore    float64           `json:"z_score"`
	Metric    map[string]string `json:"metric"`
}

// DetectAnomalies flags data points whose z-score against their own series
// exceeds the threshold. Series with fewer than 3 parseable points or zero
// variance are skipped.
func DetectAnomalies(result *QueryResult, thresholdStd float64) []Anomaly {
	var anomalies []Anomaly
	if result == nil {
		return anomalies
	}
	if thresholdStd <= 0 {
		thresholdStd = 2.0
	}

	for _, s := range result.Data.Result {
		type point struct{ ts, val float64 }
		var points []point
		for _, v := range s.Values {
			if f, ok := v.Float(); ok {
				points = append(points, point{v.Timestamp, f})
			}
		}
		if len(points) < 3 {
			continue
		}

		mean := 0.0
		for _, p := range points {
			mean += p.val
		}
		mean /= float64(len(points))

		variance := 0.0
		for _, p := range points {
			variance += (p.val - mean) * (p.val - mean)
		}
		variance /= float64(len(points))
		std := math.Sqrt(variance)
		if std == 0 {
			continue
		}

		for _, p := range points {
			z := math.Abs(p.val-mean) / std
			if z > thresholdStd {
				anomalies = append(anomalies, Anomaly{
					Timestamp: p.ts,
					Value:     p.val,
					ZScore:    z,
					Metric:    s.Metric,
				})
			}
		}
	}
	return anomalies
}

// RateOfChange computes the per-second rate of change across a series, or
// false when fewer than two parseable points exist.
func RateOfChange(values []Sample) (float64, bool) {
	type point struct{ ts, val float64 }
	var points []point
	for _, v := range values {
		if f, ok := v.Float(); ok {
			points = append(points, point{v.Timestamp, f})
		}
	}
	if len(points) < 2 {
		return 0, false
	}
	first, last := points[0], points[len(points)-1]
	dt := last.ts - first.ts
	if dt <= 0 {
		return 0, false
	}
	return (last.val - first.val) / dt, true
}

func minOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func avgOf(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
