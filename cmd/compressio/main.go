package main

import (
	"encoding/binary"
	"flag"
	"io"
	"os"

	"github.com/archivekit/compressio/config"
	"github.com/archivekit/compressio/internal/core/domain"
	"github.com/archivekit/compressio/internal/core/services/archive"
	"github.com/archivekit/compressio/pkg/errors"
	"github.com/archivekit/compressio/pkg/fs"
	"github.com/archivekit/compressio/pkg/logger"
)

// The CLI stands in for the enclosing archive layer: it frames every chunk
// the core produces with a big-endian length prefix and terminates the
// stream with a zero-length frame, the format's end-of-stream marker. The
// core itself never writes that marker.
func main() {
	logger := logger.New("compressio")
	defer logger.Sync()

	var (
		configPath = flag.String("config", "", "path to a yaml config file")
		decompress = flag.Bool("d", false, "restore instead of compress")
		code       = flag.Int("c", domain.DefaultCompression,
			"compression code: 0 none, 1-9 deflate level, -1 library default; must match the compressing run when restoring")
		output = flag.String("o", "", "output path")
	)
	flag.Parse()

	if flag.NArg() != 1 || *output == "" {
		logger.Info("usage: compressio [-d] [-c code] [-config file] -o output input")
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			logger.Infow("load config error", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	in, err := fs.OpenFile(flag.Arg(0))
	if err != nil {
		logger.Infow("open input error", "path", flag.Arg(0), "error", err)
		os.Exit(1)
	}
	defer in.Close()

	out, err := fs.CreateFile(*output)
	if err != nil {
		logger.Infow("create output error", "path", *output, "error", err)
		os.Exit(1)
	}
	defer out.Close()

	if *decompress {
		err = restore(in, out, *code)
	} else {
		err = compress(cfg, in, out, *code)
	}

	if err != nil {
		if errors.IsValidationError(err) {
			verr := errors.GetValidationError(err)
			logger.Infow("invalid arguments", "field", verr.Field, "value", verr.Value, "error", verr.Err)
		} else if cerr := errors.GetCompressError(err); cerr != nil {
			logger.Infow("stream error", "category", cerr.Category.String(), "operation", cerr.Operation, "error", cerr.Err)
		} else {
			logger.Infow("stream error", "error", err)
		}
		os.Exit(1)
	}
}

// compress runs one write session over the input file and terminates the
// frame stream with the zero-length end-of-stream frame.
func compress(cfg *config.Config, in io.Reader, out io.Writer, code int) error {
	writer, err := archive.NewWriter(code, func(p []byte) (int, error) {
		if err := writeFrame(out, p); err != nil {
			return 0, err
		}
		return len(p), nil
	})
	if err != nil {
		return err
	}

	buf := make([]byte, cfg.Archive.ChunkSize)
	for {
		n, rerr := in.Read(buf)
		if n > 0 {
			if _, werr := writer.Write(buf[:n]); werr != nil {
				writer.Close()
				return werr
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			writer.Close()
			return rerr
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}

	return writeFrame(out, nil)
}

// restore reads the frame stream back and delivers the decompressed payload
// to the output file.
func restore(in io.Reader, out io.Writer, code int) error {
	return archive.ReadAll(code,
		func(suggestedSize int) ([]byte, error) {
			var length uint32
			if err := binary.Read(in, binary.BigEndian, &length); err != nil {
				return nil, err
			}
			if length == 0 {
				return nil, nil
			}

			chunk := make([]byte, length)
			if _, err := io.ReadFull(in, chunk); err != nil {
				return nil, err
			}
			return chunk, nil
		},
		func(p []byte) error {
			_, err := out.Write(p)
			return err
		},
	)
}

func writeFrame(out io.Writer, p []byte) error {
	if err := binary.Write(out, binary.BigEndian, uint32(len(p))); err != nil {
		return err
	}
	if len(p) == 0 {
		return nil
	}
	_, err := out.Write(p)
	return err
}
