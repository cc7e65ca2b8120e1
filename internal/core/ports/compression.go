package ports

import "github.com/archivekit/compressio/internal/core/domain"

// WriteChunkFunc delivers one chunk of archive data downstream. The callback
// must either write the full length and return it, or return an error; a
// short count without an error is treated as a fatal downstream failure.
//
// A zero-length chunk is reserved by the enclosing archive format as its
// end-of-stream marker, so codecs never invoke this with empty data.
type WriteChunkFunc func(p []byte) (int, error)

// ReadChunkFunc obtains the next chunk of archive data from upstream.
// suggestedSize is only a hint; the callback may return fewer or more bytes.
// A zero-length result (with nil error) signals end of input.
type ReadChunkFunc func(suggestedSize int) ([]byte, error)

// SinkFunc consumes a span of decompressed payload bytes during a read.
// Spans are delivered complete and in order.
type SinkFunc func(p []byte) error

// Defines the interface for a streaming compressor bound to one downstream
// chunk sink. This allows us to swap compression algorithms without changing
// the session logic that drives them.
type CompressorPort interface {
	// Write feeds payload bytes into the codec. The codec accepts the
	// entire input (buffering internally as needed) and returns its
	// length, or fails with a terminal error.
	Write(p []byte) (int, error)

	// Close signals end of input, drains all buffered codec output to the
	// downstream sink, and releases codec resources. Resources are
	// released even when the final flush fails.
	Close() error

	// Algorithm returns the algorithm fixed at construction.
	Algorithm() domain.Algorithm

	// Level returns the compression level fixed at construction.
	Level() int
}
