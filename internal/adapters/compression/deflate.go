package compression

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/archivekit/compressio/internal/core/domain"
	"github.com/archivekit/compressio/internal/core/ports"
	"github.com/archivekit/compressio/pkg/errors"
)

// chunkWriter stages codec output in a fixed-capacity buffer and delivers it
// downstream in whole chunks. The buffer is owned exclusively by the writer
// and addressed through an explicit fill cursor, never aliased elsewhere.
type chunkWriter struct {
	write ports.WriteChunkFunc
	buf   []byte // Staging buffer, fixed capacity for the session lifetime.
	n     int    // Number of staged bytes awaiting flush.
	err   error  // First downstream failure; latched, no write is retried.
}

func newChunkWriter(write ports.WriteChunkFunc) *chunkWriter {
	return &chunkWriter{write: write, buf: stagingPool.Get()}
}

// Write stages p, flushing full buffers downstream as it goes.
func (w *chunkWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}

	var total int

	for len(p) > 0 {
		if w.n == len(w.buf) {
			if err := w.flush(); err != nil {
				return total, err
			}
		}

		c := copy(w.buf[w.n:], p)
		w.n += c
		total += c
		p = p[c:]
	}

	return total, nil
}

// flush delivers the staged bytes downstream and resets the buffer. An empty
// buffer is never flushed: a zero-length chunk is the archive format's
// end-of-stream marker and must not appear mid-stream as data.
func (w *chunkWriter) flush() error {
	if w.err != nil {
		return w.err
	}
	if w.n == 0 {
		return nil
	}

	n, err := w.write(w.buf[:w.n])
	if err != nil {
		w.err = errors.NewCompressError(errors.ErrorDownstreamWrite, "flush-chunk", err)
		return w.err
	}
	if n != w.n {
		w.err = errors.NewCompressError(
			errors.ErrorDownstreamWrite, "flush-chunk",
			fmt.Errorf("short write: %d != %d", n, w.n),
		)
		return w.err
	}

	w.n = 0
	return nil
}

// release returns the staging buffer to the pool. Safe to call once per
// writer; the writer must not be used afterwards.
func (w *chunkWriter) release() {
	if w.buf != nil {
		stagingPool.Put(w.buf)
		w.buf = nil
	}
}

// deflateCompressor is the streaming write pipeline for compressed members:
// an incremental zlib compressor whose output is staged by a chunkWriter and
// flushed downstream as chunks fill.
type deflateCompressor struct {
	level   int
	staging *chunkWriter
	zw      *zlib.Writer
}

func newDeflateCompressor(level int, write ports.WriteChunkFunc) (*deflateCompressor, error) {
	staging := newChunkWriter(write)

	zw, err := zlib.NewWriterLevel(staging, level)
	if err != nil {
		staging.release()
		return nil, errors.NewCompressError(errors.ErrorCodecInit, "init-compressor", err)
	}

	return &deflateCompressor{level: level, staging: staging, zw: zw}, nil
}

// Write feeds data into the compressor. The compressor buffers internally, so
// the entire input is accepted and its length returned; any flush cycle that
// fails deep inside surfaces as an error, never as a short count.
func (c *deflateCompressor) Write(p []byte) (int, error) {
	if _, err := c.zw.Write(p); err != nil {
		if errors.IsCompressError(err) {
			return 0, err
		}
		return 0, errors.NewCompressError(errors.ErrorCodec, "compress", err)
	}
	return len(p), nil
}

// Close finalizes the stream and drains all remaining codec output
// downstream, including the terminator a session with zero writes produces.
// The staging buffer is released on every path.
func (c *deflateCompressor) Close() error {
	defer c.staging.release()

	if err := c.zw.Close(); err != nil {
		// Downstream failures surface through the staging writer with
		// their category already attached.
		if errors.IsCompressError(err) {
			return err
		}
		return errors.NewCompressError(errors.ErrorCodecClose, "close-compressor", err)
	}

	return c.staging.flush()
}

func (c *deflateCompressor) Algorithm() domain.Algorithm {
	return domain.AlgorithmDeflate
}

func (c *deflateCompressor) Level() int {
	return c.level
}

// chunkSource adapts the upstream chunk callback to io.Reader for the
// decompressor. Chunks larger than the reader's request are carried over;
// the first callback failure is retained so it can be told apart from codec
// errors on the way out.
type chunkSource struct {
	read    ports.ReadChunkFunc
	pending []byte
	eof     bool
	err     error
}

func (s *chunkSource) Read(p []byte) (int, error) {
	for len(s.pending) == 0 {
		if s.err != nil {
			return 0, s.err
		}
		if s.eof {
			return 0, io.EOF
		}

		chunk, err := s.read(inputChunkSize)
		if err != nil {
			s.err = err
			return 0, err
		}

		// A zero-length chunk is the upstream EOF sentinel.
		if len(chunk) == 0 {
			s.eof = true
			return 0, io.EOF
		}

		s.pending = chunk
	}

	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

// readDeflate is the streaming read pipeline for compressed members. It pulls
// chunks from upstream until the EOF sentinel, decompressing into a
// fixed-capacity staging buffer and forwarding every produced span to the
// sink, then keeps draining the decompressor until it reports end of stream.
func readDeflate(read ports.ReadChunkFunc, sink ports.SinkFunc) error {
	src := &chunkSource{read: read}

	zr, err := zlib.NewReader(src)
	if err != nil {
		if src.err != nil {
			return src.err
		}
		return errors.NewCompressError(errors.ErrorCodecInit, "init-decompressor", err)
	}

	out := stagingPool.Get()
	defer stagingPool.Put(out)

	for {
		n, rerr := zr.Read(out)
		if n > 0 {
			if serr := sink(out[:n]); serr != nil {
				zr.Close()
				return serr
			}
		}

		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			zr.Close()
			if src.err != nil {
				return src.err
			}
			return errors.NewCompressError(errors.ErrorCodec, "decompress", rerr)
		}
	}

	if err := zr.Close(); err != nil {
		return errors.NewCompressError(errors.ErrorCodecClose, "close-decompressor", err)
	}

	return nil
}
