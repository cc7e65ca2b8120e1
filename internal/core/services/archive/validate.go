package archive

import (
	"fmt"

	"github.com/archivekit/compressio/internal/core/ports"
	"github.com/archivekit/compressio/pkg/errors"
)

func validateWriteCallback(out ports.WriteChunkFunc) error {
	if out == nil {
		return errors.NewValidationError("out", nil, fmt.Errorf("output chunk callback is required"))
	}
	return nil
}

func validateReadCallbacks(read ports.ReadChunkFunc, sink ports.SinkFunc) error {
	if read == nil {
		return errors.NewValidationError("read", nil, fmt.Errorf("input chunk callback is required"))
	}
	if sink == nil {
		return errors.NewValidationError("sink", nil, fmt.Errorf("sink callback is required"))
	}
	return nil
}
