package archive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/manav03panchal/quotd/internal/errors"
	"github.com/manav03panchal/quotd/internal/model"
	"github.com/manav03panchal/quotd/internal/storage"
	"gopkg.in/yaml.v3"
)

// BundleVersion is the current bundle layout version.
const BundleVersion = 1

// Format is the serialization of a bundle.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Bundle is an exported snapshot of the quote store, favorites and journal.
type Bundle struct {
	Version    int           `json:"version" yaml:"version"`
	ExportedAt time.Time     `json:"exported_at" yaml:"exported_at"`
	Quotes     []model.Quote `json:"quotes" yaml:"quotes"`
	Favorites  []model.Quote `json:"favorites,omitempty" yaml:"favorites,omitempty"`
	Journal    string        `json:"journal,omitempty" yaml:"journal,omitempty"`
}

// NewBundle creates a bundle stamped with at.
func NewBundle(quotes, favorites []model.Quote, journal string, at time.Time) *Bundle {
	return &Bundle{
		Version:    BundleVersion,
		ExportedAt: at,
		Quotes:     quotes,
		Favorites:  favorites,
		Journal:    journal,
	}
}

// ParseFormat parses a --format style name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	ue := errors.NewUserErrorWithField("format", s,
		errors.ErrUnknownFormat.Error(), "Use --format json or --format yaml.")
	ue.Cause = errors.ErrUnknownFormat
	return "", ue
}

// FormatFromPath picks the serialization from path's extension, ignoring a
// trailing compression extension. Paths without an extension are JSON.
func FormatFromPath(path string) (Format, Compression, error) {
	c, base := SplitCompression(path)
	switch strings.ToLower(filepath.Ext(base)) {
	case ".json", "":
		return FormatJSON, c, nil
	case ".yaml", ".yml":
		return FormatYAML, c, nil
	}
	ue := errors.NewUserErrorWithField("output", path,
		errors.ErrUnknownFormat.Error(), errors.GetSuggestion(errors.ErrUnknownFormat))
	ue.Cause = errors.ErrUnknownFormat
	return "", c, ue
}

// DefaultFileName returns the export file name used when none is given.
func DefaultFileName(at time.Time, f Format) string {
	return fmt.Sprintf("quotd-export-%s.%s", at.Format("20060102"), f)
}

// Marshal serializes b.
func Marshal(b *Bundle, f Format) ([]byte, error) {
	if f == FormatYAML {
		return yaml.Marshal(b)
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Write serializes b with f, compresses it according to path's extension and
// writes it atomically. An empty f is taken from path.
func Write(path string, b *Bundle, f Format) error {
	pathFormat, c, err := FormatFromPath(path)
	if f == "" {
		if err != nil {
			return err
		}
		f = pathFormat
	}

	data, err := Marshal(b, f)
	if err != nil {
		return fmt.Errorf("encoding bundle: %w", err)
	}
	if data, err = Compress(data, c); err != nil {
		return fmt.Errorf("compressing bundle: %w", err)
	}
	return storage.SafeWrite(path, data, 0o644)
}

// Read loads a bundle from path. Compression is detected from the content.
// A file holding a bare quote list is returned as a bundle with only quotes.
func Read(path string) (*Bundle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data, err := Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a bundle or a bare quote list, in JSON or YAML.
func Parse(data []byte) (*Bundle, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", errors.ErrUnknownFormat)
	}

	var (
		b   *Bundle
		err error
	)
	switch trimmed[0] {
	case '[', '{':
		b, err = parseJSON(trimmed)
	default:
		// Block scalars keep their trailing newlines only in the untrimmed text.
		b, err = parseYAML(data)
	}
	if err != nil {
		return nil, err
	}

	if b.Version > BundleVersion {
		return nil, fmt.Errorf("%w: bundle version %d is newer than supported %d",
			errors.ErrUnknownFormat, b.Version, BundleVersion)
	}
	return b, nil
}

func parseJSON(data []byte) (*Bundle, error) {
	if data[0] == '[' {
		var quotes []model.Quote
		if err := json.Unmarshal(data, &quotes); err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrUnknownFormat, err)
		}
		return &Bundle{Version: BundleVersion, Quotes: quotes}, nil
	}

	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrUnknownFormat, err)
	}
	return &b, nil
}

func parseYAML(data []byte) (*Bundle, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrUnknownFormat, err)
	}
	if len(node.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", errors.ErrUnknownFormat)
	}

	doc := node.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		var quotes []model.Quote
		if err := doc.Decode(&quotes); err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrUnknownFormat, err)
		}
		return &Bundle{Version: BundleVersion, Quotes: quotes}, nil

	case yaml.MappingNode:
		var b Bundle
		if err := doc.Decode(&b); err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrUnknownFormat, err)
		}
		return &b, nil
	}

	return nil, fmt.Errorf("%w: expected a bundle or a list of quotes", errors.ErrUnknownFormat)
}
