package domain

// Algorithm identifies the compression algorithm applied to an archive
// member's payload stream. The algorithm is fixed when a write session is
// created and never changes for the lifetime of the session.
type Algorithm uint8

const (
	// AlgorithmNone stores the payload bytes verbatim. Chunks still flow
	// through the same callback contract as compressed streams.
	AlgorithmNone Algorithm = iota + 1

	// AlgorithmDeflate compresses the payload as a zlib-framed deflate
	// stream, the format the archive container expects for compressed
	// members.
	AlgorithmDeflate
)

// Compression codes accepted from callers. The code both selects the
// algorithm and, for deflate, carries the level.
const (
	// NoCompression disables compression entirely.
	NoCompression = 0

	// DefaultCompression selects deflate at the library's default level.
	DefaultCompression = -1

	// MinCompressionLevel is the lowest explicit deflate level.
	MinCompressionLevel = 1

	// MaxCompressionLevel is the highest explicit deflate level.
	MaxCompressionLevel = 9
)

// String returns the string representation of the Algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmNone:
		return "none"
	case AlgorithmDeflate:
		return "deflate"
	default:
		return "unknown"
	}
}

// IsValid checks if the Algorithm is a known valid value.
// Returns false for any undefined algorithm.
func (a Algorithm) IsValid() bool {
	return a == AlgorithmNone || a == AlgorithmDeflate
}

// ValidCompressionCode reports whether code is an accepted compression code:
// NoCompression, DefaultCompression, or an explicit deflate level.
func ValidCompressionCode(code int) bool {
	if code == NoCompression || code == DefaultCompression {
		return true
	}
	return code >= MinCompressionLevel && code <= MaxCompressionLevel
}
