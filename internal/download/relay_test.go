package download

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ytget/dy/internal/logging"
)

// stepReader returns one scripted result per Read call
type stepReader struct {
	steps  []readStep
	closed bool
}

type readStep struct {
	data string
	err  error
}

func (r *stepReader) Read(p []byte) (int, error) {
	if len(r.steps) == 0 {
		return 0, io.EOF
	}
	step := r.steps[0]
	r.steps = r.steps[1:]
	n := copy(p, step.data)
	return n, step.err
}

func (r *stepReader) Close() error {
	r.closed = true
	return nil
}

func collect(r io.ReadCloser, size int) []string {
	out := make(chan []byte)
	go readChunks(r, size, out, logging.Discard())

	var chunks []string
	for chunk := range out {
		chunks = append(chunks, string(chunk))
	}
	return chunks
}

func TestReadChunks(t *testing.T) {
	tests := []struct {
		name  string
		steps []readStep
		want  []string
	}{
		{
			name:  "chunks until EOF",
			steps: []readStep{{data: "a"}, {data: "bc"}, {err: io.EOF}},
			want:  []string{"a", "bc"},
		},
		{
			name:  "data with EOF is delivered",
			steps: []readStep{{data: "last", err: io.EOF}},
			want:  []string{"last"},
		},
		{
			name:  "zero-length read stops",
			steps: []readStep{{data: "a"}, {}, {data: "never"}},
			want:  []string{"a"},
		},
		{
			name:  "read error stops without retry",
			steps: []readStep{{data: "a"}, {err: errors.New("broken pipe")}, {data: "never"}},
			want:  []string{"a"},
		},
		{
			name:  "immediate EOF",
			steps: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &stepReader{steps: tt.steps}
			got := collect(r, 16)

			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("Expected chunks %q, got %q", tt.want, got)
			}
			if !r.closed {
				t.Error("Expected the reader to be closed when the relay ends")
			}
		})
	}
}

func TestReadChunksSize(t *testing.T) {
	input := strings.Repeat("x", 2500)
	r := io.NopCloser(strings.NewReader(input))

	got := collect(r, 1023)

	want := []int{1023, 1023, 454}
	if len(got) != len(want) {
		t.Fatalf("Expected %d chunks, got %d", len(want), len(got))
	}
	for i, chunk := range got {
		if len(chunk) != want[i] {
			t.Errorf("Chunk %d: expected %d bytes, got %d", i, want[i], len(chunk))
		}
	}
}

func TestReadChunksCopies(t *testing.T) {
	// Each chunk must survive later reads into the shared buffer
	r := &stepReader{steps: []readStep{{data: "first"}, {data: "second"}}}
	got := collect(r, 8)

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("Expected [first second], got %q", got)
	}
}
