package topk

// span is a half-open range [start, end) of input positions owned by one worker.
type span struct {
	start int
	end   int
}

// len returns the number of positions covered by the span.
func (s span) len() int { return s.end - s.start }

// spans splits n positions into w contiguous ranges whose union is [0, n).
// Range i covers [i*n/w, (i+1)*n/w): sizes differ by at most one and the
// split depends only on n and w. Ranges may be empty when w > n.
func spans(n, w int) []span {
	out := make([]span, w)
	for i := 0; i < w; i++ {
		out[i] = span{start: i * n / w, end: (i + 1) * n / w}
	}
	return out
}
