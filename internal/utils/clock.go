package utils

import (
	"math"
	"time"
)

// Now is the clock read by NowMillis and NowSeconds. Tests replace it.
var Now = time.Now

// NowMillis returns milliseconds since the Unix epoch. A clock reading before
// the epoch yields 0 rather than an error.
func NowMillis() uint64 {
	ms := Now().UnixMilli()
	if ms < 0 {
		return 0
	}
	return uint64(ms)
}

// NowSeconds returns seconds since the Unix epoch clamped to the uint32 range.
func NowSeconds() uint32 {
	s := Now().Unix()
	switch {
	case s < 0:
		return 0
	case s > math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(s)
}
