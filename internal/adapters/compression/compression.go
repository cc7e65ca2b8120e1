// Package compression provides the streaming codecs behind an archive
// member's payload stream. The write side feeds a stateful compressor whose
// output is staged in fixed-capacity buffers and flushed downstream chunk by
// chunk; the read side pulls chunks from upstream, decompresses them, and
// pushes the plain bytes to a sink. The passthrough codec follows the same
// chunk contract without transforming the bytes.
package compression

import (
	"fmt"

	"github.com/archivekit/compressio/internal/core/domain"
	"github.com/archivekit/compressio/internal/core/ports"
	"github.com/archivekit/compressio/pkg/errors"
	"github.com/archivekit/compressio/pkg/pool"
)

const (
	// stagingBufferSize is the fixed capacity of the output staging
	// buffers used by both pipelines. Never resized for the lifetime of a
	// session.
	stagingBufferSize = 4 * 1024

	// inputChunkSize is the capacity suggested to the upstream read
	// callback. The callback is free to return more or fewer bytes.
	inputChunkSize = 4 * 1024
)

// deflateSupported reports build-time availability of the deflate codec.
// Selecting an unavailable algorithm fails loudly instead of silently
// falling back to an uncompressed stream.
const deflateSupported = true

// stagingPool recycles staging buffers across sessions.
var stagingPool = pool.NewBufferPool(stagingBufferSize)

// ParseCompression interprets a numeric compression code. Codes 1 through 9
// and DefaultCompression select deflate, with the code as the level;
// NoCompression selects the passthrough codec. Any other code is rejected
// before any I/O happens.
func ParseCompression(code int) (domain.Algorithm, int, error) {
	switch {
	case code == domain.DefaultCompression,
		code >= domain.MinCompressionLevel && code <= domain.MaxCompressionLevel:
		return domain.AlgorithmDeflate, code, nil
	case code == domain.NoCompression:
		return domain.AlgorithmNone, 0, nil
	default:
		return 0, 0, errors.NewCompressError(
			errors.ErrorInvalidConfig, "parse-compression",
			fmt.Errorf("invalid compression code: %d", code),
		)
	}
}

// Supported reports whether the algorithm is available in this build.
func Supported(algorithm domain.Algorithm) bool {
	switch algorithm {
	case domain.AlgorithmNone:
		return true
	case domain.AlgorithmDeflate:
		return deflateSupported
	default:
		return false
	}
}

// NewCompressor resolves the compression code and builds a streaming
// compressor bound to the downstream chunk callback.
//
// Returns an error if:
// - The compression code is invalid.
// - The selected algorithm is unavailable in this build.
// - The codec fails to initialize.
func NewCompressor(code int, write ports.WriteChunkFunc) (ports.CompressorPort, error) {
	algorithm, level, err := ParseCompression(code)
	if err != nil {
		return nil, err
	}

	if !Supported(algorithm) {
		return nil, errors.NewCompressError(
			errors.ErrorUnsupported, "new-compressor",
			fmt.Errorf("algorithm %s is not available in this build", algorithm),
		)
	}

	switch algorithm {
	case domain.AlgorithmDeflate:
		return newDeflateCompressor(level, write)
	default:
		return newNoneCompressor(write), nil
	}
}

// Read pulls the whole payload stream from the upstream chunk callback,
// decompresses it per the compression code, and delivers every decompressed
// span to the sink in order. It returns once upstream has signaled EOF and
// the codec has reported end of stream.
func Read(code int, read ports.ReadChunkFunc, sink ports.SinkFunc) error {
	algorithm, _, err := ParseCompression(code)
	if err != nil {
		return err
	}

	if !Supported(algorithm) {
		return errors.NewCompressError(
			errors.ErrorUnsupported, "read",
			fmt.Errorf("algorithm %s is not available in this build", algorithm),
		)
	}

	if algorithm == domain.AlgorithmDeflate {
		return readDeflate(read, sink)
	}
	return readNone(read, sink)
}
