package commands

import (
	"crypto/rand"
	"io"
	"os"

	dserrors "github.com/systmms/wifikeys/internal/errors"
)

func shredFile(path string, passes int) error {
	if passes < 1 || passes > 10 {
		return dserrors.UserError{
			Message:    "Invalid number of passes",
			Suggestion: "Passes must be between 1 and 10",
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	size := info.Size()
	if size == 0 {
		return os.Remove(path)
	}

	file, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	for pass := 1; pass <= passes; pass++ {
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return err
		}
		if err := overwriteWithRandom(file, size); err != nil {
			return err
		}
		if err := file.Sync(); err != nil {
			return err
		}
	}

	_ = file.Close()
	return os.Remove(path)
}

func overwriteWithRandom(w io.Writer, size int64) error {
	const bufSize = 64 * 1024

	buf := make([]byte, bufSize)
	remaining := size

	for remaining > 0 {
		n := bufSize
		if remaining < int64(bufSize) {
			n = int(remaining)
		}
		if _, err := rand.Read(buf[:n]); err != nil {
			return err
		}
		if _, err := w.Write(buf[:n]); err != nil {
			return err
		}
		remaining -= int64(n)
	}

	return nil
}
