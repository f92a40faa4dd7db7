package fileops

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/neo/internal/core/ports"
)

var (
	// ErrNoPaths is returned by Read when it is called without any path.
	ErrNoPaths = errors.New("no file paths given")
	// ErrSameFile is returned by Copy when src and dst name the same file.
	ErrSameFile = errors.New("source and destination are the same file")
)

// LocalFileOperator implements the FileOperator interface on the local file system.
type LocalFileOperator struct {
	out io.Writer
}

// NewLocalFileOperator creates a LocalFileOperator that writes file contents to out.
func NewLocalFileOperator(out io.Writer) ports.FileOperator {
	return &LocalFileOperator{out: out}
}

// Read copies each file to the operator's output. It stops at the first failure.
func (o *LocalFileOperator) Read(paths ...string) error {
	if len(paths) == 0 {
		return ErrNoPaths
	}
	for _, path := range paths {
		if err := o.readOne(path); err != nil {
			return err
		}
	}
	return nil
}

func (o *LocalFileOperator) readOne(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	if _, err := io.Copy(o.out, file); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}

// Copy copies the contents of src into dst, creating or truncating dst.
// The permission bits of src are applied to dst.
func (o *LocalFileOperator) Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source %s: %w", src, err)
	}
	if info.IsDir() {
		return fmt.Errorf("source %s is a directory", src)
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return fmt.Errorf("cannot copy %s to %s: %w", src, dst, ErrSameFile)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to open destination %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close destination %s: %w", dst, err)
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", dst, err)
	}
	return nil
}
