package handlers

import (
	"strconv"
	"strings"
)

// byteRange is a parsed, clamped Range header for a resource of known size.
type byteRange struct {
	Start int64
	End   int64
}

// Size returns the number of bytes the range covers, inclusive of both ends.
func (r byteRange) Size() int64 {
	return r.End - r.Start + 1
}

// parseRange interprets a "bytes=start-end" header against the total
// resource length. An unparsable start is treated as 0, a missing end as
// total-1, and end is clamped to total-1. ok is false when the range is
// unsatisfiable (start beyond the resource or past end), which callers must
// answer with 416.
func parseRange(header string, total int64) (byteRange, bool) {
	spec := strings.TrimPrefix(strings.TrimSpace(header), "bytes=")
	// Multi-range requests are not supported; serve the first range only.
	if i := strings.Index(spec, ","); i >= 0 {
		spec = spec[:i]
	}

	parts := strings.SplitN(spec, "-", 2)

	var start int64
	if v, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64); err == nil && v >= 0 {
		start = v
	}

	end := total - 1
	if len(parts) == 2 {
		if v, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64); err == nil && v >= 0 {
			end = v
		}
	}
	if end > total-1 {
		end = total - 1
	}

	if start > end || start >= total {
		return byteRange{}, false
	}
	return byteRange{Start: start, End: end}, true
}
