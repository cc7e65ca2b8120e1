package fs

import (
	"errors"
	"os"
)

// CreateFile creates a file, truncating it if it already exists.
func CreateFile(fileName string) (*os.File, error) {
	file, err := os.Create(fileName)
	return file, err
}

// OpenFile opens a file for reading.
func OpenFile(fileName string) (*os.File, error) {
	file, err := os.Open(fileName)
	return file, err
}

// Exists checks if a file exists or not.
func Exists(fileName string) (bool, error) {
	_, err := os.Stat(fileName)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
