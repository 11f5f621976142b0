// Package attachment converts raw files into transport-safe attachments.
package attachment

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/longkey1/crybaby/internal/crybaby"
)

// RawFile is a file handed over by the file input boundary
type RawFile struct {
	Name     string
	MIMEType string
	Open     func() (io.ReadCloser, error)
}

// FromPath builds a RawFile for a local file.
// If mimeType is empty the declared type is sniffed from the file content.
func FromPath(path, mimeType string) (RawFile, error) {
	name := filepath.Base(path)
	if mimeType == "" {
		mt, err := mimetype.DetectFile(path)
		if err != nil {
			return RawFile{}, &crybaby.AttachmentReadError{Name: name, Err: err}
		}
		mimeType = mt.String()
	}

	return RawFile{
		Name:     name,
		MIMEType: baseType(mimeType),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// FromBytes builds a RawFile backed by an in-memory buffer
func FromBytes(name, mimeType string, data []byte) RawFile {
	return RawFile{
		Name:     name,
		MIMEType: baseType(mimeType),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// FromReader buffers r into a RawFile, e.g. for data piped on stdin.
// If mimeType is empty it is sniffed from the content.
func FromReader(name, mimeType string, r io.Reader) (RawFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return RawFile{}, &crybaby.AttachmentReadError{Name: name, Err: err}
	}
	if mimeType == "" {
		mimeType = mimetype.Detect(data).String()
	}
	return FromBytes(name, mimeType, data), nil
}

// Encode reads the whole file and returns it as a data-URI encoded attachment
func Encode(f RawFile) (crybaby.Attachment, error) {
	if f.Open == nil {
		return crybaby.Attachment{}, &crybaby.AttachmentReadError{Name: f.Name, Err: fmt.Errorf("file is not readable")}
	}

	rc, err := f.Open()
	if err != nil {
		return crybaby.Attachment{}, &crybaby.AttachmentReadError{Name: f.Name, Err: err}
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return crybaby.Attachment{}, &crybaby.AttachmentReadError{Name: f.Name, Err: err}
	}

	return crybaby.Attachment{
		Name:     f.Name,
		MIMEType: f.MIMEType,
		Data:     fmt.Sprintf("data:%s;base64,%s", f.MIMEType, base64.StdEncoding.EncodeToString(data)),
	}, nil
}

// Decode returns the original bytes of an attachment
func Decode(a crybaby.Attachment) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(a.Payload())
	if err != nil {
		return nil, fmt.Errorf("failed to decode attachment %q: %w", a.Name, err)
	}
	return data, nil
}

// Category returns the top-level media type, e.g. "audio" for "audio/mpeg"
func Category(mimeType string) string {
	category, _, _ := strings.Cut(baseType(mimeType), "/")
	return category
}

// baseType drops parameters such as "; charset=utf-8"
func baseType(mimeType string) string {
	t, _, _ := strings.Cut(mimeType, ";")
	return strings.ToLower(strings.TrimSpace(t))
}
