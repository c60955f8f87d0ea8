package platform

import (
	"strconv"
	"strings"
	"testing"

	"github.com/ytget/dy/internal/model"
)

func TestParseProgress(t *testing.T) {
	tests := []struct {
		name        string
		chunk       string
		wantPercent float64
		wantHas     bool
		wantSpeed   string
	}{
		{
			name:        "typical download line",
			chunk:       "[download]  45.2% of 10.00MiB at 1.50MiB/s ETA 00:10",
			wantPercent: 45.2,
			wantHas:     true,
			wantSpeed:   "1.50MiB/s",
		},
		{
			name:  "destination line has neither value",
			chunk: "[download] Destination: video.mp4",
		},
		{
			name:        "percent at the very start of the chunk",
			chunk:       "50% done",
			wantPercent: 50,
			wantHas:     true,
		},
		{
			name:        "finished line reports one hundred",
			chunk:       "[download] 100% of   10.00MiB in 00:00:05 at 2.00MiB/s",
			wantPercent: 100,
			wantHas:     true,
			wantSpeed:   "2.00MiB/s",
		},
		{
			name:      "zero percent is rejected",
			chunk:     "[download]   0.0% of 10.00MiB at 1.00KiB/s ETA 99:00",
			wantSpeed: "1.00KiB/s",
		},
		{
			name:  "above one hundred is rejected",
			chunk: "[download] 100.1% of 10.00MiB",
		},
		{
			name:  "far above one hundred is rejected",
			chunk: "ratio 150%",
		},
		{
			name:  "percent without number",
			chunk: "[download] abc% of file",
		},
		{
			name:  "only the first percent sign is considered",
			chunk: "progress: n/a% then 50%",
		},
		{
			name:        "space between number and percent sign",
			chunk:       "[download] 45.2 % of 10.00MiB",
			wantPercent: 45.2,
			wantHas:     true,
		},
		{
			name:        "number immediately before percent wins over earlier digits",
			chunk:       "frag 3 45%",
			wantPercent: 45,
			wantHas:     true,
		},
		{
			name:        "multi line chunk uses the first percent and first speed",
			chunk:       "[download]  10.0% of 5.00MiB at 1.00MiB/s\n[download]  20.0% of 5.00MiB at 2.00MiB/s\n",
			wantPercent: 10,
			wantHas:     true,
			wantSpeed:   "1.00MiB/s",
		},
		{
			name:      "speed without percent",
			chunk:     "at   3.25KiB/s",
			wantSpeed: "3.25KiB/s",
		},
		{
			name:      "gibibytes win over earlier kibibytes",
			chunk:     "at 900.00KiB/s then 1.2GiB/s",
			wantSpeed: "1.2GiB/s",
		},
		{
			name:      "mebibytes win over earlier kibibytes",
			chunk:     "500.0KiB/s 2.0MiB/s",
			wantSpeed: "2.0MiB/s",
		},
		{
			name:  "unit without number",
			chunk: "rate xKiB/s",
		},
		{
			name:  "split token yields nothing",
			chunk: "[download]  45.",
		},
		{
			name:  "empty chunk",
			chunk: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := ParseProgress([]byte(tt.chunk))

			if sample.HasPercent != tt.wantHas {
				t.Fatalf("HasPercent = %v, expected %v (percent=%v)", sample.HasPercent, tt.wantHas, sample.Percent)
			}
			if tt.wantHas && sample.Percent != tt.wantPercent {
				t.Errorf("Percent = %v, expected %v", sample.Percent, tt.wantPercent)
			}
			if sample.Speed != tt.wantSpeed {
				t.Errorf("Speed = %q, expected %q", sample.Speed, tt.wantSpeed)
			}
		})
	}
}

func TestParseProgress_PercentInRange(t *testing.T) {
	values := []float64{0.1, 1, 12.5, 45.2, 99.9, 100}
	prefixes := []string{"", "[download] ", "[download]   ", "x"}
	suffixes := []string{"", " of 10.00MiB", "\n"}

	for _, value := range values {
		num := strconv.FormatFloat(value, 'f', -1, 64)
		for _, prefix := range prefixes {
			for _, suffix := range suffixes {
				chunk := prefix + num + "%" + suffix
				sample := ParseProgress([]byte(chunk))
				if !sample.HasPercent || sample.Percent != value {
					t.Errorf("ParseProgress(%q) = (%v, %v), expected %v", chunk, sample.Percent, sample.HasPercent, value)
				}
			}
		}
	}
}

func TestParseProgress_PercentOutOfRange(t *testing.T) {
	for _, num := range []string{"0", "0.0", "00", "100.01", "101", "250", "1000"} {
		chunk := "[download] " + num + "% of 1.00MiB"
		if sample := ParseProgress([]byte(chunk)); sample.HasPercent {
			t.Errorf("ParseProgress(%q) reported percent %v, expected none", chunk, sample.Percent)
		}
	}
}

func TestParseProgress_SpeedExact(t *testing.T) {
	chunks := []string{
		"12.5MiB/s",
		" 12.5MiB/s",
		"at 12.5MiB/s ETA 00:01",
		"[download]  3.0% of 1.00GiB at    12.5MiB/s",
	}

	for _, chunk := range chunks {
		sample := ParseProgress([]byte(chunk))
		if sample.Speed != "12.5MiB/s" {
			t.Errorf("ParseProgress(%q).Speed = %q, expected %q", chunk, sample.Speed, "12.5MiB/s")
		}
	}
}

func TestParseProgress_SpeedBufferBound(t *testing.T) {
	tests := []struct {
		name   string
		digits int
		kept   bool
	}{
		{name: "fits the display buffer", digits: SpeedBufferSize - len("MiB/s") - 1, kept: true},
		{name: "exactly the buffer size is dropped", digits: SpeedBufferSize - len("MiB/s"), kept: false},
		{name: "far too long is dropped", digits: 200, kept: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunk := strings.Repeat("1", tt.digits) + "MiB/s"
			sample := ParseProgress([]byte(chunk))
			if tt.kept && sample.Speed != chunk {
				t.Errorf("expected speed %q, got %q", chunk, sample.Speed)
			}
			if !tt.kept && sample.Speed != "" {
				t.Errorf("expected speed to be dropped, got %q", sample.Speed)
			}
		})
	}
}

func TestParseProgress_Idempotent(t *testing.T) {
	chunks := []string{
		"[download]  45.2% of 10.00MiB at 1.50MiB/s ETA 00:10",
		"[download] Destination: video.mp4",
		"ratio 150% at 3KiB/s",
	}

	for _, chunk := range chunks {
		buf := []byte(chunk)
		first := ParseProgress(buf)
		second := ParseProgress(buf)
		if first != second {
			t.Errorf("ParseProgress(%q) not idempotent: %+v vs %+v", chunk, first, second)
		}
		if string(buf) != chunk {
			t.Errorf("ParseProgress modified its input: %q", string(buf))
		}
	}
}

func TestParseProgress_ReturnsModelSample(t *testing.T) {
	sample := ParseProgress([]byte("[download]  45.2% of 10.00MiB at 1.50MiB/s ETA 00:10"))
	expected := model.ProgressSample{Percent: 45.2, HasPercent: true, Speed: "1.50MiB/s"}
	if sample != expected {
		t.Errorf("expected %+v, got %+v", expected, sample)
	}
}

func TestLeadingFloat(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"45.2", 45.2, true},
		{"100", 100, true},
		{"5.", 5, true},
		{".5", 0.5, true},
		{"1.2.3", 1.2, true},
		{".", 0, false},
		{"", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		value, ok := leadingFloat(tt.input)
		if ok != tt.ok || value != tt.expected {
			t.Errorf("leadingFloat(%q) = (%v, %v), expected (%v, %v)", tt.input, value, ok, tt.expected, tt.ok)
		}
	}
}
