// Package textfile loads and saves a line store as newline-delimited UTF-8
// text.
package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/iw2rmb/linepad/buffer"
)

// Load reads path into a buffer. A missing file is a new, empty document and
// returns no error. Any other read failure also yields an empty buffer, along
// with the error, so callers can report it and keep editing.
func Load(path string) (*buffer.Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return buffer.Empty(), nil
		}
		return buffer.Empty(), fmt.Errorf("load %s: %w", path, err)
	}
	return Decode(data), nil
}

// Decode splits data on '\n'. '\r' is kept as an ordinary character and
// invalid UTF-8 decodes to U+FFFD.
func Decode(data []byte) *buffer.Buffer {
	return buffer.New(string(data))
}

// Encode joins the lines of b with '\n'. A trailing empty line is the
// trailing newline of the last non-empty line, so Encode(Decode(data))
// reproduces data for any valid UTF-8 input.
func Encode(b *buffer.Buffer) []byte {
	return []byte(b.Text())
}

// Save truncates path and writes Encode(b) to it. A failed save may leave a
// partial file behind.
func Save(b *buffer.Buffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if _, err := w.Write(Encode(b)); err != nil {
		_ = f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
