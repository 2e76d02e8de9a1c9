// Package styleio loads and encodes style documents. Documents travel as
// YAML, TOML, or JSON files; loading goes through koanf so layered sources
// merge the same way regardless of format.
package styleio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	kjson "github.com/knadh/koanf/parsers/json"
	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/vsoch/pyout/pkg/logging"
	"github.com/vsoch/pyout/pkg/styles"
)

var log = logging.GetLogger("styleio")

// userStyleFile is the user style document path relative to the XDG config
// home.
const userStyleFile = "pyout/styles.yaml"

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load reads a style document from path, picking the parser from the file
// extension (.yaml/.yml, .toml, or .json).
func Load(path string) (styles.Document, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), format.parser()); err != nil {
		return nil, fmt.Errorf("failed to load style document from %s: %w", path, err)
	}

	doc := styles.Document(k.Raw())
	log.Debug().Str("path", path).Int("keys", len(doc)).Msg("Loaded style document")
	return doc, nil
}

// LoadLayered reads documents from every path into one koanf instance, so
// later files deep-merge over earlier ones. This is file-level layering for
// assembling a base document; refining an active style is what Adopt is for.
func LoadLayered(paths ...string) (styles.Document, error) {
	k := koanf.New(".")
	for _, path := range paths {
		format, err := FormatForPath(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), format.parser()); err != nil {
			return nil, fmt.Errorf("failed to load style document from %s: %w", path, err)
		}
	}

	doc := styles.Document(k.Raw())
	log.Debug().Int("layers", len(paths)).Int("keys", len(doc)).Msg("Loaded layered style document")
	return doc, nil
}

// LoadUser returns the user's style document: the embedded starter defaults
// with $XDG_CONFIG_HOME/pyout/styles.yaml layered on top when it exists. A
// missing user file is not an error.
func LoadUser() (styles.Document, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(starterDocument(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load starter defaults: %w", err)
	}

	path, err := xdg.SearchConfigFile(userStyleFile)
	if err != nil {
		log.Debug().Msg("No user style document found")
		return styles.Document(k.Raw()), nil
	}

	if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load user style document from %s: %w", path, err)
	}

	log.Debug().Str("path", path).Msg("Loaded user style document")
	return styles.Document(k.Raw()), nil
}

// UserStylePath returns where the user style document belongs, whether or
// not it exists yet.
func UserStylePath() string {
	return filepath.Join(xdg.ConfigHome, filepath.FromSlash(userStyleFile))
}

// starterDocument parses the embedded starter content into a raw mapping.
func starterDocument() map[string]interface{} {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: starterContent}, kyaml.Parser()); err != nil {
		return map[string]interface{}{}
	}
	return k.Raw()
}

// Format identifies a style document encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
	FormatJSON
)

// String returns the conventional name of the format.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

func (f Format) parser() koanf.Parser {
	switch f {
	case FormatTOML:
		return ktoml.Parser()
	case FormatJSON:
		return kjson.Parser()
	default:
		return kyaml.Parser()
	}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml", "":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatYAML, fmt.Errorf("unknown format: %s", s)
	}
}

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return FormatYAML, fmt.Errorf("cannot tell style document format from %q", path)
	}
}
