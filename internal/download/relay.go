package download

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// readChunks is the stream reader. It issues one read at a time and sends a
// copy of every non-empty chunk on out. An empty read or any error ends the
// relay without retry; only the completion handler reports the outcome.
func readChunks(r io.ReadCloser, size int, out chan<- []byte, log logrus.FieldLogger) {
	defer close(out)
	defer r.Close()

	buf := make([]byte, size)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			out <- chunk
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.WithError(err).Debug("Output stream read failed, stopping relay")
			}
			return
		}
		if n == 0 {
			return
		}
	}
}
