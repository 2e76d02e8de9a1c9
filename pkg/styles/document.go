package styles

import "sort"

// Document is a style document: a JSON-compatible mapping whose top-level
// keys are table-level properties or column names.
type Document map[string]interface{}

// ValueKind classifies a document value for merge dispatch.
type ValueKind int

const (
	// KindScalar values (strings, numbers, booleans, null, opaque hooks)
	// are replaced wholesale when overridden.
	KindScalar ValueKind = iota
	// KindMapping values merge one level deep.
	KindMapping
	// KindList values (interval rule lists) are replaced wholesale,
	// never merged element-wise.
	KindList
)

// KindOf classifies a document value. The document shape set is closed, so
// this is a plain type switch; merge and clone behavior dispatch on the
// returned tag rather than inspecting values at each site.
func KindOf(value interface{}) ValueKind {
	switch value.(type) {
	case Document, map[string]interface{}:
		return KindMapping
	case []interface{}:
		return KindList
	default:
		return KindScalar
	}
}

// AsMapping views a document value as a mapping. It accepts both the
// Document type and the raw map form produced by decoders.
func AsMapping(value interface{}) (map[string]interface{}, bool) {
	switch m := value.(type) {
	case Document:
		return m, true
	case map[string]interface{}:
		return m, true
	}
	return nil, false
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for key, value := range d {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value interface{}) interface{} {
	switch KindOf(value) {
	case KindMapping:
		m, _ := AsMapping(value)
		out := make(map[string]interface{}, len(m))
		for key, inner := range m {
			out[key] = cloneValue(inner)
		}
		return out
	case KindList:
		list := value.([]interface{})
		out := make([]interface{}, len(list))
		for i, inner := range list {
			out[i] = cloneValue(inner)
		}
		return out
	default:
		return value
	}
}

// NewDocument returns a document seeded with the table-level defaults and a
// default-shaped entry for each named column. Adopt never introduces new
// top-level keys, so seeding the columns first is how a style for a fresh
// column set is built before user overrides are layered on.
func NewDocument(columns ...string) Document {
	doc := make(Document, len(tableProperties)+len(columns))
	for name, prop := range tableProperties {
		doc[name] = cloneValue(prop.Default)
	}
	for _, column := range columns {
		doc[column] = cloneValue(tableProperties[PropDefault].Default)
	}
	return doc
}

// EffectiveColumn returns the style in effect for one column: the declared
// default_ base, the document's own default_ layered on, then the column's
// entry. Entries that are not mappings are ignored; validation is the place
// where malformed documents are reported.
func EffectiveColumn(doc Document, column string) map[string]interface{} {
	base, _ := AsMapping(tableProperties[PropDefault].Default)
	effective := mergeMappings(base, nil)
	if m, ok := AsMapping(doc[PropDefault]); ok {
		effective = mergeMappings(effective, m)
	}
	if m, ok := AsMapping(doc[column]); ok {
		effective = mergeMappings(effective, m)
	}
	return effective
}

// TableValue resolves a table-level property from the document, falling back
// to the declared default when the document does not set it.
func TableValue(doc Document, prop string) (interface{}, error) {
	if !IsTableProperty(prop) {
		return nil, NewErrorf(ErrUnknownProperty, "no table-level property %q", prop)
	}
	if value, ok := doc[prop]; ok {
		return value, nil
	}
	return Default(prop)
}

// Columns returns the document's column names (every top-level key that is
// not a table-level property), sorted.
func (d Document) Columns() []string {
	columns := make([]string, 0, len(d))
	for key := range d {
		if !IsTableProperty(key) {
			columns = append(columns, key)
		}
	}
	sort.Strings(columns)
	return columns
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
