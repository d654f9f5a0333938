package analysis

import "strconv"

// Bucket is a closed integer interval [Lo, Hi] of a histogram.
type Bucket struct {
	Lo    int
	Hi    int
	Count int
}

func (b Bucket) Label() string {
	if b.Lo == b.Hi {
		return strconv.Itoa(b.Lo)
	}
	return strconv.Itoa(b.Lo) + "-" + strconv.Itoa(b.Hi)
}

// Histogram groups integer values into at most bins equal-width buckets
// starting at the minimum value. Buckets are integer aligned, so a range
// that fits in bins distinct values gets one bucket per value.
func Histogram(values []int, bins int) []Bucket {
	if len(values) == 0 || bins <= 0 {
		return nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	span := hi - lo + 1
	width := ceilDiv(span, bins)
	n := ceilDiv(span, width)

	buckets := make([]Bucket, n)
	for i := range buckets {
		buckets[i].Lo = lo + i*width
		buckets[i].Hi = buckets[i].Lo + width - 1
	}
	for _, v := range values {
		buckets[(v-lo)/width].Count++
	}
	return buckets
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
