package resume

import (
	"bytes"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

const pdfMIME = "application/pdf"

var pdfMagic = []byte("%PDF-")

// Validate checks that data looks like a PDF within the size limit.
// The filename extension or the declared content type must say PDF, and the
// payload must start with the PDF header.
func Validate(filename, contentType string, data []byte, maxBytes int64) error {
	if len(data) == 0 {
		return ErrEmpty
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, maxBytes)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".pdf" && !isPDFContentType(contentType) {
		return ErrNotPDF
	}
	if !bytes.HasPrefix(bytes.TrimLeft(data, "\x00\t\r\n "), pdfMagic) {
		return ErrNotPDF
	}
	return nil
}

func isPDFContentType(ct string) bool {
	if ct == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(ct)
	return err == nil && mt == pdfMIME
}

// PageCount returns the number of pages of a PDF document.
// Malformed documents yield an error, never a panic.
func PageCount(data []byte) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("read pdf: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("read pdf: %w", err)
	}
	return r.NumPage(), nil
}
