package compression

import (
	"testing"

	"github.com/archivekit/compressio/internal/core/domain"
	"github.com/archivekit/compressio/pkg/errors"
)

func TestParseCompression(t *testing.T) {
	tests := []struct {
		name      string
		code      int
		algorithm domain.Algorithm
		level     int
	}{
		{name: "none", code: 0, algorithm: domain.AlgorithmNone, level: 0},
		{name: "default level", code: domain.DefaultCompression, algorithm: domain.AlgorithmDeflate, level: domain.DefaultCompression},
		{name: "level 1", code: 1, algorithm: domain.AlgorithmDeflate, level: 1},
		{name: "level 6", code: 6, algorithm: domain.AlgorithmDeflate, level: 6},
		{name: "level 9", code: 9, algorithm: domain.AlgorithmDeflate, level: 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			algorithm, level, err := ParseCompression(tc.code)
			if err != nil {
				t.Fatalf("ParseCompression(%d) returned error: %v", tc.code, err)
			}
			if algorithm != tc.algorithm {
				t.Errorf("algorithm = %v, want %v", algorithm, tc.algorithm)
			}
			if level != tc.level {
				t.Errorf("level = %d, want %d", level, tc.level)
			}
		})
	}
}

func TestParseCompressionInvalid(t *testing.T) {
	for _, code := range []int{-2, 10, 42, -100} {
		if _, _, err := ParseCompression(code); !errors.IsCategory(err, errors.ErrorInvalidConfig) {
			t.Errorf("ParseCompression(%d) = %v, want invalid-config error", code, err)
		}
	}
}

func TestSupported(t *testing.T) {
	if !Supported(domain.AlgorithmNone) {
		t.Error("none must always be supported")
	}
	if !Supported(domain.AlgorithmDeflate) {
		t.Error("deflate must be supported in this build")
	}
	if Supported(domain.Algorithm(99)) {
		t.Error("unknown algorithm reported as supported")
	}
}

func TestNewCompressorInvalidCodePerformsNoIO(t *testing.T) {
	calls := 0
	_, err := NewCompressor(11, func(p []byte) (int, error) {
		calls++
		return len(p), nil
	})

	if !errors.IsCategory(err, errors.ErrorInvalidConfig) {
		t.Fatalf("NewCompressor(11) = %v, want invalid-config error", err)
	}
	if calls != 0 {
		t.Errorf("output callback invoked %d times for a rejected code", calls)
	}
}

func TestReadInvalidCodePerformsNoIO(t *testing.T) {
	reads := 0
	err := Read(11,
		func(suggestedSize int) ([]byte, error) {
			reads++
			return nil, nil
		},
		func(p []byte) error { return nil },
	)

	if !errors.IsCategory(err, errors.ErrorInvalidConfig) {
		t.Fatalf("Read(11) = %v, want invalid-config error", err)
	}
	if reads != 0 {
		t.Errorf("input callback invoked %d times for a rejected code", reads)
	}
}
