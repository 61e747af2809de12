package dto

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"jeopardytool/internal/domain"

	"gopkg.in/yaml.v3"
)

// Format selects the document encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" and "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported document format %q", s)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer document format of %q: no extension", path)
	}
	return ParseFormat(ext)
}

// Extension returns the file extension (with dot) written for the format.
func (f Format) Extension() string {
	return "." + string(f)
}

// Marshal encodes v in the given format.
func Marshal(v any, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case FormatYAML:
		var sb strings.Builder
		enc := yaml.NewEncoder(&sb)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return []byte(sb.String()), nil
	default:
		return nil, fmt.Errorf("unsupported document format %q", f)
	}
}

// Unmarshal decodes data in the given format into v.
func Unmarshal(data []byte, v any, f Format) error {
	switch f {
	case FormatJSON:
		return json.Unmarshal(data, v)
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("unsupported document format %q", f)
	}
}

// EncodeGame writes g as a versioned game document.
func EncodeGame(w io.Writer, g *domain.Game, f Format) error {
	doc, err := NewGameDocument(g)
	if err != nil {
		return err
	}
	b, err := Marshal(doc, f)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// DecodeGame reads a game document. source names the input in errors.
func DecodeGame(r io.Reader, f Format, source string) (*domain.Game, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, domain.NewDecodeError(source, err)
	}
	var doc GameDocument
	if err := Unmarshal(data, &doc, f); err != nil {
		return nil, domain.NewDecodeError(source, err)
	}
	g, err := doc.ToDomain()
	if err != nil {
		return nil, domain.NewDecodeError(source, err)
	}
	return g, nil
}

// DecodeLegacyCategory reads one legacy category file. Only the JSON
// format is accepted.
func DecodeLegacyCategory(r io.Reader, f Format, source string) (*domain.Category, error) {
	if f != FormatJSON {
		return nil, domain.NewDecodeError(source, fmt.Errorf("legacy category files are JSON, got %s", f))
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, domain.NewDecodeError(source, err)
	}
	var legacy LegacyCategory
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, domain.NewDecodeError(source, err)
	}
	c, err := legacy.ToDomain()
	if err != nil {
		return nil, domain.NewDecodeError(source, err)
	}
	return c, nil
}
