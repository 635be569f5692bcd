// Package fsx abstracts the blob storage used for uploaded documents.
package fsx

import (
	"context"
	"errors"
	"io"
)

var ErrNotExist = errors.New("fsx: file does not exist")

type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)
	Exists(ctx context.Context, path string) (bool, error)
}

type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte) error
	WriteFileStream(ctx context.Context, path string, r io.Reader) error
	DeleteFile(ctx context.Context, path string) error
}

type FileSystem interface {
	FileReader
	FileWriter

	// Join builds a storage path from its elements
	Join(elem ...string) string
}
