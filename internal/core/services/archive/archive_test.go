package archive

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/archivekit/compressio/internal/core/domain"
	"github.com/archivekit/compressio/pkg/errors"
)

func roundTrip(t *testing.T, code int, payload []byte) []byte {
	t.Helper()

	var chunks [][]byte
	writer, err := NewWriter(code, func(p []byte) (int, error) {
		chunk := make([]byte, len(p))
		copy(chunk, p)
		chunks = append(chunks, chunk)
		return len(p), nil
	})
	if err != nil {
		t.Fatalf("NewWriter(%d) error: %v", code, err)
	}

	if len(payload) > 0 {
		if _, err := writer.Write(payload); err != nil {
			t.Fatalf("Write error: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	for i, chunk := range chunks {
		if len(chunk) == 0 {
			t.Fatalf("chunk %d has zero length; that is the archive EOF marker", i)
		}
	}

	i := 0
	var restored []byte
	err = ReadAll(code,
		func(suggestedSize int) ([]byte, error) {
			if i >= len(chunks) {
				return nil, nil
			}
			chunk := chunks[i]
			i++
			return chunk, nil
		},
		func(p []byte) error {
			restored = append(restored, p...)
			return nil
		},
	)
	if err != nil {
		t.Fatalf("ReadAll error: %v", err)
	}
	return restored
}

func TestRoundTripAllCodes(t *testing.T) {
	payload := bytes.Repeat([]byte("archive member payload bytes. "), 700)

	for _, code := range []int{0, domain.DefaultCompression, 1, 2, 3, 4, 5, 6, 7, 8, 9} {
		t.Run(fmt.Sprintf("code %d", code), func(t *testing.T) {
			restored := roundTrip(t, code, payload)
			if !bytes.Equal(restored, payload) {
				t.Fatalf("round trip mismatch for code %d", code)
			}
		})
	}
}

func TestRoundTripEmptyPayload(t *testing.T) {
	for _, code := range []int{0, 6} {
		t.Run(fmt.Sprintf("code %d", code), func(t *testing.T) {
			restored := roundTrip(t, code, nil)
			if len(restored) != 0 {
				t.Fatalf("empty payload restored to %d bytes", len(restored))
			}
		})
	}
}

func TestNewWriterValidation(t *testing.T) {
	if _, err := NewWriter(6, nil); !errors.IsValidationError(err) {
		t.Fatalf("NewWriter(6, nil) = %v, want validation error", err)
	}
}

func TestNewWriterInvalidCode(t *testing.T) {
	_, err := NewWriter(42, func(p []byte) (int, error) { return len(p), nil })
	if !errors.IsCategory(err, errors.ErrorInvalidConfig) {
		t.Fatalf("NewWriter(42) = %v, want invalid-config error", err)
	}
}

func TestReadAllValidation(t *testing.T) {
	sink := func(p []byte) error { return nil }
	read := func(suggestedSize int) ([]byte, error) { return nil, nil }

	if err := ReadAll(6, nil, sink); !errors.IsValidationError(err) {
		t.Fatalf("ReadAll with nil read = %v, want validation error", err)
	}
	if err := ReadAll(6, read, nil); !errors.IsValidationError(err) {
		t.Fatalf("ReadAll with nil sink = %v, want validation error", err)
	}
}

func TestWriterClosedSession(t *testing.T) {
	writer, err := NewWriter(0, func(p []byte) (int, error) { return len(p), nil })
	if err != nil {
		t.Fatalf("NewWriter error: %v", err)
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	// Close is effective exactly once; the session rejects further use.
	if err := writer.Close(); !stderrors.Is(err, ErrWriterClosed) {
		t.Fatalf("second Close = %v, want ErrWriterClosed", err)
	}
	if _, err := writer.Write([]byte("late")); !stderrors.Is(err, ErrWriterClosed) {
		t.Fatalf("Write after Close = %v, want ErrWriterClosed", err)
	}
}

func TestWriterAlgorithmAndLevel(t *testing.T) {
	tests := []struct {
		code      int
		algorithm domain.Algorithm
		level     int
	}{
		{code: 0, algorithm: domain.AlgorithmNone, level: 0},
		{code: 3, algorithm: domain.AlgorithmDeflate, level: 3},
		{code: domain.DefaultCompression, algorithm: domain.AlgorithmDeflate, level: domain.DefaultCompression},
	}

	for _, tc := range tests {
		writer, err := NewWriter(tc.code, func(p []byte) (int, error) { return len(p), nil })
		if err != nil {
			t.Fatalf("NewWriter(%d) error: %v", tc.code, err)
		}
		if writer.Algorithm() != tc.algorithm {
			t.Errorf("code %d: algorithm = %v, want %v", tc.code, writer.Algorithm(), tc.algorithm)
		}
		if writer.Level() != tc.level {
			t.Errorf("code %d: level = %d, want %d", tc.code, writer.Level(), tc.level)
		}
		writer.Close()
	}
}

func TestWriterDownstreamFailure(t *testing.T) {
	cause := stderrors.New("short write downstream")
	writer, err := NewWriter(0, func(p []byte) (int, error) { return 0, cause })
	if err != nil {
		t.Fatalf("NewWriter error: %v", err)
	}

	_, werr := writer.Write([]byte("payload"))
	if !errors.IsCategory(werr, errors.ErrorDownstreamWrite) {
		t.Fatalf("error = %v, want downstream-write category", werr)
	}
	if !stderrors.Is(werr, cause) {
		t.Fatalf("error chain lost the callback failure: %v", werr)
	}
}
