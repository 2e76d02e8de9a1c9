package styles

// Adopt layers overrides onto style and returns the combined document.
//
// The merge is scoped by value kind: mapping values combine one level deep
// (the override's entries win, entries only the override has are added at
// that nested level), while scalar and list values are replaced wholesale.
// Keys present only in overrides never enter the result; the top-level key
// set of the output is exactly that of style. Use NewDocument to seed fresh
// top-level keys before adopting.
//
// A nil overrides returns style as-is. Neither input is modified. Adopt
// performs no validation: malformed fragments merge just as happily as
// conforming ones, and Validate is where they get caught.
func Adopt(style, overrides Document) Document {
	if overrides == nil {
		return style
	}
	combined := make(Document, len(style))
	for key, value := range style {
		switch KindOf(value) {
		case KindMapping:
			base, _ := AsMapping(value)
			override, present := overrides[key]
			if !present {
				combined[key] = mergeMappings(base, nil)
				continue
			}
			if m, ok := AsMapping(override); ok {
				combined[key] = mergeMappings(base, m)
			} else {
				// The override demotes the mapping to a scalar
				// (or null); it replaces wholesale like any
				// other non-mapping value.
				combined[key] = override
			}
		default:
			if override, present := overrides[key]; present {
				combined[key] = override
			} else {
				combined[key] = value
			}
		}
	}
	return combined
}

// mergeMappings returns the one-level union of base and override: every key
// of base with the override's value winning, plus keys only the override
// carries. Values transfer by reference; neither input is modified.
func mergeMappings(base, override map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(base)+len(override))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range override {
		merged[key] = value
	}
	return merged
}
