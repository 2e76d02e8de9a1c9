package styleio

import (
	"encoding/json"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/vsoch/pyout/pkg/styles"
)

// Encode renders a style document in the given format. Output always ends
// with a newline so it can go straight to a terminal or file.
func Encode(doc styles.Document, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(map[string]interface{}(doc))
		if err != nil {
			return nil, fmt.Errorf("failed to encode style document as yaml: %w", err)
		}
		return data, nil
	case FormatTOML:
		data, err := toml.Marshal(stripNulls(doc))
		if err != nil {
			return nil, fmt.Errorf("failed to encode style document as toml: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(map[string]interface{}(doc), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode style document as json: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// stripNulls drops nil-valued mapping entries recursively. TOML has no
// null, so absence is the only faithful encoding for a null property.
// Null interval bounds inside lists cannot be expressed in TOML at all;
// documents carrying them encode as yaml or json only.
func stripNulls(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for key, value := range m {
		if value == nil {
			continue
		}
		if inner, ok := styles.AsMapping(value); ok {
			out[key] = stripNulls(inner)
			continue
		}
		out[key] = value
	}
	return out
}
