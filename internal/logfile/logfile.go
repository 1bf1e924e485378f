// Package logfile reads CI log files into memory and writes reports to disk.
package logfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Byte order marks recognized by Read.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// ErrInvalidEncoding is returned when a log that is not marked as UTF-16
// is not valid UTF-8.
var ErrInvalidEncoding = errors.New("log is not valid UTF-8")

// Read returns the full content of the file at path as UTF-8 text.
// Files starting with a UTF-8 or UTF-16 byte order mark are decoded
// accordingly and the mark is dropped.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Decode(data)
}

// Decode converts raw log bytes to UTF-8 text.
func Decode(data []byte) (string, error) {
	if !hasUTF16BOM(data) {
		data = bytes.TrimPrefix(data, bomUTF8)
		if !utf8.Valid(data) {
			return "", ErrInvalidEncoding
		}
		return string(data), nil
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	text, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("decode log: %w", err)
	}
	return string(text), nil
}

func hasUTF16BOM(data []byte) bool {
	return bytes.HasPrefix(data, bomUTF16LE) || bytes.HasPrefix(data, bomUTF16BE)
}

// Write stores content at path, replacing any existing file.
// Missing parent directories are not created.
func Write(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

// Append adds content to the end of the file at path, creating it if needed.
func Append(path, content string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = f.WriteString(content)
	return err
}
