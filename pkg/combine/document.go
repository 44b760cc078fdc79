// File: pkg/combine/document.go
package combine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// FileRecord is one emitted file.
type FileRecord struct {
	Path     string // Path relative to the scanned root, forward slashes.
	Language string // Code fence tag, empty for plain text.
	Content  string // Decoded content.
	Encoding string // Encoding the content was decoded with.
}

// Document accumulates the Markdown output in memory until it is written once.
type Document struct {
	buf   strings.Builder
	files []string
}

// WriteHeader appends a free-form block, used for the introductory header.
func (d *Document) WriteHeader(s string) {
	d.buf.WriteString(s)
}

// Append adds the section for one file.
func (d *Document) Append(rec FileRecord) {
	fmt.Fprintf(&d.buf, "--- File: %s ---\n\n", filepath.ToSlash(rec.Path))
	d.buf.WriteString("```" + rec.Language + "\n")
	d.buf.WriteString(rec.Content)
	if rec.Content != "" && !strings.HasSuffix(rec.Content, "\n") {
		d.buf.WriteByte('\n')
	}
	d.buf.WriteString("```\n\n")
	d.files = append(d.files, filepath.ToSlash(rec.Path))
}

// Files returns the paths of the appended sections in order.
func (d *Document) Files() []string { return d.files }

// Len is the size of the document in bytes.
func (d *Document) Len() int { return d.buf.Len() }

// Bytes returns the serialized document.
func (d *Document) Bytes() []byte { return []byte(d.buf.String()) }

// String returns the serialized document.
func (d *Document) String() string { return d.buf.String() }

// WriteDocument writes doc to path in a single write and returns the size on disk.
// The parent directory must already exist.
func WriteDocument(path string, doc *Document, logger *zap.Logger) (int64, error) {
	logger.Debug("Writing document", zap.String("file", path), zap.Int("bytes", doc.Len()))

	if err := writeToFile(path, doc.Bytes(), 0o644, logger); err != nil {
		return 0, fmt.Errorf("could not write to output file %q: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		logger.Warn("Failed to stat output file", zap.String("file", path), zap.Error(err))
		return int64(doc.Len()), nil
	}
	return info.Size(), nil
}

// writeToFile writes data to a file and logs the operation.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Successfully wrote file", zap.String("path", path))
	return nil
}
