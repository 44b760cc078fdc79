// Package charset guesses and resolves text encodings for files of unknown origin.
package charset

import (
	"fmt"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Names of the encodings the reader falls back to.
const (
	UTF8Name   = "UTF-8"
	Latin1Name = "ISO-8859-1"
)

// Guess is a detector's answer for a byte sample.
type Guess struct {
	Charset    string  // Charset label, e.g. "windows-1252".
	Confidence float64 // Confidence in [0, 1].
}

// Detector inspects a sample of raw bytes and guesses its encoding.
type Detector func(sample []byte) Guess

// UTF8 is the default detector. It always answers UTF-8 with full confidence.
func UTF8(_ []byte) Guess {
	return Guess{Charset: UTF8Name, Confidence: 1}
}

// Statistical returns a Detector backed by chardet's text detector.
// A sample chardet cannot classify yields a zero-confidence UTF-8 guess.
func Statistical() Detector {
	d := chardet.NewTextDetector()
	return func(sample []byte) Guess {
		if len(sample) == 0 {
			return UTF8(sample)
		}
		res, err := d.DetectBest(sample)
		if err != nil || res == nil || res.Charset == "" {
			return Guess{Charset: UTF8Name}
		}
		return Guess{Charset: res.Charset, Confidence: float64(res.Confidence) / 100}
	}
}

// Latin1 decodes every byte value to the code point of the same number.
var Latin1 encoding.Encoding = charmap.ISO8859_1

// IsUTF8 reports whether name labels UTF-8.
func IsUTF8(name string) bool {
	switch strings.ToLower(strings.ReplaceAll(name, "_", "-")) {
	case "utf-8", "utf8":
		return true
	}
	return false
}

// aliases covers labels chardet reports that neither index knows.
var aliases = map[string]encoding.Encoding{
	"gb-18030": simplifiedchinese.GB18030,
	"utf-32be": utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	"utf-32le": utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
}

// Lookup resolves an IANA or WHATWG charset label to an encoding.
// Labels the WHATWG index maps to its replacement encoding (ISO-2022-CN,
// ISO-2022-KR) are unsupported, as are EBCDIC labels such as IBM420_ltr.
func Lookup(name string) (encoding.Encoding, error) {
	if IsUTF8(name) {
		return unicode.UTF8, nil
	}
	if enc, ok := aliases[strings.ToLower(name)]; ok {
		return enc, nil
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil && enc != encoding.Replacement {
		return enc, nil
	}
	if enc, err := htmlindex.Get(name); err == nil && enc != nil && enc != encoding.Replacement {
		return enc, nil
	}
	return nil, fmt.Errorf("unsupported charset %q", name)
}
