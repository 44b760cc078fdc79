// File: pkg/combine/reader.go
package combine

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"projctx/pkg/charset"
)

const (
	// SampleSize is the number of leading bytes handed to the detector.
	SampleSize = 5000
	// ConfidenceThreshold must be exceeded for a detected charset to be used.
	ConfidenceThreshold = 0.7
)

// Reader loads files and decodes them to text through the fallback chain
// UTF-8, detected charset, Latin-1.
type Reader struct {
	fs     billy.Filesystem
	detect charset.Detector
	logger *zap.Logger
}

// NewReader creates a Reader. A nil detector means charset.UTF8.
func NewReader(fsys billy.Filesystem, detect charset.Detector, logger *zap.Logger) *Reader {
	if detect == nil {
		detect = charset.UTF8
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{fs: fsys, detect: detect, logger: logger}
}

// Read returns the decoded content of path and the name of the encoding used.
func (r *Reader) Read(path string) (string, string, error) {
	data, err := util.ReadFile(r.fs, path)
	if err != nil {
		return "", "", fmt.Errorf("error reading file %s: %w", path, err)
	}
	text, enc, err := r.Decode(data)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", path, err)
	}
	return text, enc, nil
}

// Decode runs the fallback chain over raw bytes.
func (r *Reader) Decode(data []byte) (string, string, error) {
	if len(data) == 0 {
		return "", charset.UTF8Name, nil
	}
	if validUTF8(data) {
		return string(data), charset.UTF8Name, nil
	}

	sample := data
	if len(sample) > SampleSize {
		sample = sample[:SampleSize]
	}
	name := charset.UTF8Name
	guess := r.detect(sample)
	if guess.Charset != "" && guess.Confidence > ConfidenceThreshold {
		name = guess.Charset
	}
	r.logger.Debug("UTF-8 decoding failed, trying detected encoding",
		zap.String("charset", guess.Charset),
		zap.Float64("confidence", guess.Confidence),
		zap.String("using", name))

	// UTF-8 has already failed, so only a different charset is worth a try.
	if !charset.IsUTF8(name) {
		text, err := decodeAs(name, data)
		if err == nil {
			return text, name, nil
		}
		r.logger.Debug("Decoding with detected encoding failed, trying latin-1",
			zap.String("charset", name), zap.Error(err))
	}

	out, err := charset.Latin1.NewDecoder().Bytes(data)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return string(out), charset.Latin1Name, nil
}

func validUTF8(data []byte) bool {
	_, _, err := transform.Bytes(encoding.UTF8Validator, data)
	return err == nil
}

// decodeAs decodes data strictly: output that needed replacement characters is rejected.
func decodeAs(name string, data []byte) (string, error) {
	enc, err := charset.Lookup(name)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", fmt.Errorf("invalid byte sequence for %s", name)
	}
	return string(out), nil
}
