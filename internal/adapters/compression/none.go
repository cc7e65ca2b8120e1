package compression

import (
	"fmt"

	"github.com/archivekit/compressio/internal/core/domain"
	"github.com/archivekit/compressio/internal/core/ports"
	"github.com/archivekit/compressio/pkg/errors"
)

// noneCompressor is the passthrough write path: bytes go straight to the
// downstream chunk callback with no codec state in between. It is still
// bound by the chunk contract, so empty input produces no chunk at all.
type noneCompressor struct {
	write ports.WriteChunkFunc
}

func newNoneCompressor(write ports.WriteChunkFunc) *noneCompressor {
	return &noneCompressor{write: write}
}

// Write forwards the exact bytes given. A short count from the callback is a
// fatal downstream failure, not retried.
func (c *noneCompressor) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n, err := c.write(p)
	if err != nil {
		return 0, errors.NewCompressError(errors.ErrorDownstreamWrite, "write-chunk", err)
	}
	if n != len(p) {
		return 0, errors.NewCompressError(
			errors.ErrorDownstreamWrite, "write-chunk",
			fmt.Errorf("short write: %d != %d", n, len(p)),
		)
	}

	return len(p), nil
}

// Close is a no-op: the passthrough path owns no codec state.
func (c *noneCompressor) Close() error {
	return nil
}

func (c *noneCompressor) Algorithm() domain.Algorithm {
	return domain.AlgorithmNone
}

func (c *noneCompressor) Level() int {
	return 0
}

// readNone pumps chunks from upstream to the sink verbatim until the EOF
// sentinel. No minimum chunk size is assumed from the source.
func readNone(read ports.ReadChunkFunc, sink ports.SinkFunc) error {
	for {
		chunk, err := read(inputChunkSize)
		if err != nil {
			return err
		}
		if len(chunk) == 0 {
			return nil
		}

		if err := sink(chunk); err != nil {
			return err
		}
	}
}
