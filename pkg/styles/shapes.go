package styles

import (
	"fmt"
	"math"
)

// Lookup maps exact rendered field values to a style value.
type Lookup map[string]interface{}

// AsLookup views a document value as a lookup element. The value must be a
// mapping whose single key is "lookup" holding a mapping; anything else,
// including an empty mapping, is not a lookup.
func AsLookup(value interface{}) (Lookup, bool) {
	m, ok := AsMapping(value)
	if !ok || len(m) != 1 {
		return nil, false
	}
	inner, ok := m["lookup"]
	if !ok {
		return nil, false
	}
	table, ok := AsMapping(inner)
	if !ok {
		return nil, false
	}
	return Lookup(table), true
}

// Get returns the style value for an exact rendered field value.
func (l Lookup) Get(value string) (interface{}, bool) {
	style, ok := l[value]
	return style, ok
}

// IntervalRule is one [low, high, style] range. Nil bounds are unbounded;
// the range is half-open, containing low and excluding high.
type IntervalRule struct {
	Low   *float64
	High  *float64
	Style interface{}
}

// Contains reports whether x falls inside the rule's range.
func (r IntervalRule) Contains(x float64) bool {
	if r.Low != nil && x < *r.Low {
		return false
	}
	if r.High != nil && x >= *r.High {
		return false
	}
	return true
}

// Interval is an ordered list of rules. Resolution walks the list in order
// and the first containing rule wins, so overlapping ranges are fine and
// earlier entries shadow later ones.
type Interval []IntervalRule

// AsInterval views a document value as an interval element: a mapping whose
// single key is "interval" holding a list of [low, high, style] triples.
// Every triple is checked; a malformed one disqualifies the whole value.
func AsInterval(value interface{}) (Interval, bool) {
	m, ok := AsMapping(value)
	if !ok || len(m) != 1 {
		return nil, false
	}
	raw, ok := m["interval"]
	if !ok {
		return nil, false
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, false
	}
	rules := make(Interval, 0, len(items))
	for _, item := range items {
		triple, ok := item.([]interface{})
		if !ok || len(triple) != 3 {
			return nil, false
		}
		low, ok := boundOf(triple[0])
		if !ok {
			return nil, false
		}
		high, ok := boundOf(triple[1])
		if !ok {
			return nil, false
		}
		switch triple[2].(type) {
		case string, bool:
		default:
			return nil, false
		}
		rules = append(rules, IntervalRule{Low: low, High: high, Style: triple[2]})
	}
	return rules, true
}

// Match returns the style of the first rule containing x.
func (iv Interval) Match(x float64) (interface{}, bool) {
	for _, rule := range iv {
		if rule.Contains(x) {
			return rule.Style, true
		}
	}
	return nil, false
}

func boundOf(value interface{}) (*float64, bool) {
	if value == nil {
		return nil, true
	}
	x, ok := AsNumber(value)
	if !ok {
		return nil, false
	}
	return &x, true
}

// WidthSpec is the object form of the width element. Nil fields were not
// set; Marker is a string or bool when present.
type WidthSpec struct {
	Width  *int
	Min    *int
	Max    *int
	Marker interface{}
}

// AsWidthSpec views a document value as the object form of width. All
// fields are optional (an empty mapping is a valid spec), min and max admit
// explicit nulls, and unknown keys disqualify the value.
func AsWidthSpec(value interface{}) (WidthSpec, bool) {
	m, ok := AsMapping(value)
	if !ok {
		return WidthSpec{}, false
	}
	var spec WidthSpec
	for key, field := range m {
		switch key {
		case "width":
			n, ok := AsInt(field)
			if !ok {
				return WidthSpec{}, false
			}
			spec.Width = &n
		case "min":
			if field == nil {
				continue
			}
			n, ok := AsInt(field)
			if !ok {
				return WidthSpec{}, false
			}
			spec.Min = &n
		case "max":
			if field == nil {
				continue
			}
			n, ok := AsInt(field)
			if !ok {
				return WidthSpec{}, false
			}
			spec.Max = &n
		case "marker":
			switch field.(type) {
			case string, bool:
				spec.Marker = field
			default:
				return WidthSpec{}, false
			}
		default:
			return WidthSpec{}, false
		}
	}
	return spec, true
}

// AsNumber widens any numeric document value to float64. Decoders disagree
// on numeric types (yaml gives int, toml int64, json float64), so every
// numeric kind is accepted.
func AsNumber(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// AsInt narrows a numeric document value to int. Integral floats count
// (JSON decodes every number as float64); fractional values do not.
func AsInt(value interface{}) (int, bool) {
	x, ok := AsNumber(value)
	if !ok {
		return 0, false
	}
	if x != math.Trunc(x) {
		return 0, false
	}
	return int(x), true
}

// ResolveField resolves a field-scoped element (bold, color, underline) for
// one concrete cell value. Plain values apply to every cell; a lookup
// consults the rendered value and an interval its numeric form. The second
// return is false when a lookup or interval has no rule for the value,
// which means the element's declared default applies.
func ResolveField(element, value interface{}) (interface{}, bool) {
	if lookup, ok := AsLookup(element); ok {
		return lookup.Get(renderValue(value))
	}
	if interval, ok := AsInterval(element); ok {
		x, ok := AsNumber(value)
		if !ok {
			return nil, false
		}
		return interval.Match(x)
	}
	return element, true
}

// renderValue formats a field value the way lookup keys are written:
// strings as themselves, everything else through default formatting.
func renderValue(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
