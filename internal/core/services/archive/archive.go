// Package archive exposes the payload-stream operations the archive layer
// drives: a write session that compresses one member's data into downstream
// chunks, and a single-call read path that restores a member's data from an
// upstream chunk stream.
//
// The write interface consists of three steps: create a Writer bound to one
// chunk callback, feed it data with as many Write calls as needed, then
// Close it to flush and release the codec. The read interface is just
// ReadAll, which loops until upstream signals EOF and the codec reports end
// of stream.
package archive

import (
	"errors"
	"sync/atomic"

	"github.com/archivekit/compressio/internal/adapters/compression"
	"github.com/archivekit/compressio/internal/core/domain"
	"github.com/archivekit/compressio/internal/core/ports"
)

var (
	// ErrWriterClosed indicates an operation on a closed write session.
	ErrWriterClosed = errors.New("write session is closed")
)

// Writer is one archive member's write session. It owns the codec state and
// staging buffers for the session and borrows the downstream chunk callback
// from the caller. Exactly one producer drives a session end to end; the
// Writer is not safe for concurrent use.
type Writer struct {
	compressor ports.CompressorPort

	// State management flags.
	closed atomic.Bool // Indicates the session has been finalized.
}

// NewWriter creates a write session for one archive member. The compression
// code selects the algorithm and level; out receives every produced chunk.
//
// Returns an error if:
//   - out is nil.
//   - The compression code is invalid.
//   - The selected algorithm is unavailable in this build.
//   - The codec fails to initialize.
func NewWriter(code int, out ports.WriteChunkFunc) (*Writer, error) {
	if err := validateWriteCallback(out); err != nil {
		return nil, err
	}

	compressor, err := compression.NewCompressor(code, out)
	if err != nil {
		return nil, err
	}

	return &Writer{compressor: compressor}, nil
}

// Write feeds payload bytes into the session. The whole input is accepted
// and its length returned, or the session fails terminally; there is no
// partial-acceptance continuation.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed.Load() {
		return 0, ErrWriterClosed
	}
	return w.compressor.Write(p)
}

// Close signals end of input, drains all buffered codec output downstream,
// and releases the session's resources. It is effective exactly once;
// further calls return ErrWriterClosed. Resources are released even when the
// final flush fails, and the flush failure is reported.
func (w *Writer) Close() error {
	if !w.closed.CompareAndSwap(false, true) {
		return ErrWriterClosed
	}
	return w.compressor.Close()
}

// Algorithm returns the algorithm fixed when the session was created.
func (w *Writer) Algorithm() domain.Algorithm {
	return w.compressor.Algorithm()
}

// Level returns the compression level fixed when the session was created.
func (w *Writer) Level() int {
	return w.compressor.Level()
}

// ReadAll restores one archive member's payload: it pulls compressed chunks
// via read until the zero-length EOF sentinel, decompresses them per the
// compression code, and delivers every decompressed span to sink, complete
// and in order, before returning. Read state lives only within the call.
func ReadAll(code int, read ports.ReadChunkFunc, sink ports.SinkFunc) error {
	if err := validateReadCallbacks(read, sink); err != nil {
		return err
	}
	return compression.Read(code, read, sink)
}
