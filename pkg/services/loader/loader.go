package loader

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/text-tools/text-atlas/pkg/models/domain"
)

// DirectInputID labels documents supplied as a string rather than
// loaded from a file.
const DirectInputID = "direct input"

// LoadError reports a file that could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// DecodeError reports file contents that are not valid in the declared
// encoding. Distinct from LoadError: the bytes were read fine but do
// not decode. Surfaced before any analysis runs.
type DecodeError struct {
	Path     string
	Encoding string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %q as %s: %v", e.Path, e.Encoding, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DefaultEncoding is assumed when the caller declares none.
const DefaultEncoding = "utf-8"

var encodings = map[string]encoding.Encoding{
	"utf-8":        nil, // validated directly, no transform needed
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"iso-8859-1":   charmap.ISO8859_1,
	"latin-1":      charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
}

// SupportedEncodings lists the encoding names accepted by LoadFile.
func SupportedEncodings() []string {
	return []string{"utf-8", "utf-16le", "utf-16be", "iso-8859-1", "latin-1", "windows-1252"}
}

// LoadFile reads a file and decodes it with the declared encoding.
// Returns a LoadError when the file cannot be read and a DecodeError
// when its contents are invalid in that encoding.
func LoadFile(path, encodingName string) (domain.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, &LoadError{Path: path, Err: err}
	}

	text, err := decode(raw, encodingName)
	if err != nil {
		return domain.Document{}, &DecodeError{Path: path, Encoding: encodingName, Err: err}
	}

	return domain.Document{
		SourceID: path,
		Text:     text,
		LoadedAt: time.Now(),
	}, nil
}

// LoadString wraps already-decoded text as a Document. An empty
// sourceID falls back to DirectInputID.
func LoadString(text, sourceID string) domain.Document {
	if sourceID == "" {
		sourceID = DirectInputID
	}
	return domain.Document{
		SourceID: sourceID,
		Text:     text,
		LoadedAt: time.Now(),
	}
}

func decode(raw []byte, encodingName string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(encodingName))
	if name == "" {
		name = DefaultEncoding
	}

	enc, ok := encodings[name]
	if !ok {
		return "", fmt.Errorf("unsupported encoding %q (supported: %s)",
			encodingName, strings.Join(SupportedEncodings(), ", "))
	}

	if enc == nil {
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("input is not valid UTF-8")
		}
		return string(raw), nil
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
