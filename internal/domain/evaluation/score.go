package evaluation

// OverallScore is the unweighted arithmetic mean of values. Criterion weights
// are informational only.
func OverallScore(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
