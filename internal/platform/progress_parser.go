package platform

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/ytget/dy/internal/model"
)

// Progress markers emitted by yt-dlp, e.g. "[download]  12.3% of 5.00MiB at 1.50MiB/s"
const (
	PercentMarker = '%'
	RunSpace      = ' '
	RunDot        = '.'
)

// Percentage bounds; the lower bound is exclusive
const (
	MinPercent = 0.0
	MaxPercent = 100.0
)

// SpeedBufferSize bounds the raw speed text (number run plus unit) that can
// be displayed. Longer matches are dropped.
const SpeedBufferSize = 64

// SpeedSuffixes lists transfer-rate units in search order. The first unit
// found anywhere in the chunk wins, even when another unit appears earlier.
var SpeedSuffixes = []string{"GiB/s", "MiB/s", "KiB/s"}

// ParseProgress extracts the percentage and speed from one chunk of yt-dlp
// output. It keeps no state between calls: a token split across two chunks
// is not reported by either of them.
func ParseProgress(chunk []byte) model.ProgressSample {
	var sample model.ProgressSample

	if percent, ok := parsePercent(chunk); ok {
		sample.Percent = percent
		sample.HasPercent = true
	}
	sample.Speed = parseSpeed(chunk)

	return sample
}

// parsePercent reads the number right before the first '%' in the chunk
func parsePercent(chunk []byte) (float64, bool) {
	idx := bytes.IndexByte(chunk, PercentMarker)
	if idx < 0 {
		return 0, false
	}

	start := numericRunStart(chunk, idx)
	fields := strings.Fields(string(chunk[start:idx]))
	if len(fields) == 0 {
		return 0, false
	}

	value, ok := leadingFloat(fields[len(fields)-1])
	if !ok || value <= MinPercent || value > MaxPercent {
		return 0, false
	}
	return value, true
}

// parseSpeed returns the display form of the first speed found, or ""
func parseSpeed(chunk []byte) string {
	for _, suffix := range SpeedSuffixes {
		idx := bytes.Index(chunk, []byte(suffix))
		if idx < 0 {
			continue
		}

		start := numericRunStart(chunk, idx)
		if idx+len(suffix)-start >= SpeedBufferSize {
			return ""
		}

		number := strings.TrimLeft(string(chunk[start:idx]), string(RunSpace))
		if !strings.ContainsAny(number, "0123456789") {
			return ""
		}
		return number + suffix
	}
	return ""
}

// numericRunStart walks back from end over digits, dots and spaces and
// returns the index where that run begins
func numericRunStart(chunk []byte, end int) int {
	start := end
	for start > 0 && isRunByte(chunk[start-1]) {
		start--
	}
	return start
}

// isRunByte reports whether c may be part of a number run
func isRunByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == RunDot || c == RunSpace
}

// leadingFloat parses the longest "digits[.digits]" prefix of s
func leadingFloat(s string) (float64, bool) {
	end := 0
	digits := 0
	seenDot := false

scan:
	for ; end < len(s); end++ {
		c := s[end]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == RunDot && !seenDot:
			seenDot = true
		default:
			break scan
		}
	}

	if digits == 0 {
		return 0, false
	}

	value, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
