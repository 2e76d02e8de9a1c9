package styles

import (
	"fmt"
	"strings"
)

// Checker is the schema-checking capability. Check returns nil for a
// conforming document, or an error whose text is the human-readable
// diagnostic. Hosts without schema checking plug in NullChecker.
type Checker interface {
	Check(doc Document) error
}

// NullChecker reports every document as conforming. With it injected,
// validation degrades to a no-op instead of failing.
type NullChecker struct{}

// Check implements Checker.
func (NullChecker) Check(Document) error { return nil }

// SchemaChecker checks documents against the built-in schema definitions.
type SchemaChecker struct{}

// Check implements Checker. Keys are visited in sorted order so the first
// reported problem is deterministic.
func (SchemaChecker) Check(doc Document) error {
	for _, key := range sortedKeys(doc) {
		value := doc[key]
		if IsTableProperty(key) {
			if err := checkTableProperty(key, value); err != nil {
				return err
			}
			continue
		}
		if err := checkColumnStyle(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Validator checks style documents through an injected Checker.
type Validator struct {
	checker Checker
}

// NewValidator returns a Validator using checker. A nil checker gets
// NullChecker, so validation in a host without the capability succeeds
// silently rather than erroring.
func NewValidator(checker Checker) *Validator {
	if checker == nil {
		checker = NullChecker{}
	}
	return &Validator{checker: checker}
}

// Validate reports whether doc conforms to the style schema. A mismatch
// comes back as a StyleError with code ErrInvalidStyle whose message embeds
// the checker's diagnostic; the checker's own error is not chained.
func (v *Validator) Validate(doc Document) error {
	if err := v.checker.Check(doc); err != nil {
		return newValidationError(err.Error())
	}
	return nil
}

var defaultValidator = NewValidator(SchemaChecker{})

// Validate checks doc with the built-in schema checker.
func Validate(doc Document) error {
	return defaultValidator.Validate(doc)
}

func checkTableProperty(prop string, value interface{}) error {
	el := tableProperties[prop]
	for _, shape := range el.Shapes {
		switch shape {
		case ShapeNull:
			if value == nil {
				return nil
			}
		case ShapeStyles:
			if _, ok := AsMapping(value); ok {
				return checkColumnStyle(prop, value)
			}
		case ShapeAttrs:
			if m, ok := AsMapping(value); ok {
				return checkAttrs(prop, m)
			}
		case ShapeString:
			if _, ok := value.(string); ok {
				return nil
			}
		case ShapeInt:
			if _, ok := AsInt(value); ok {
				return nil
			}
		}
	}
	return shapeMismatch(prop, el, value)
}

func checkColumnStyle(path string, value interface{}) error {
	m, ok := AsMapping(value)
	if !ok {
		return fmt.Errorf("%s: column style must be a mapping, got %s", path, excerpt(value))
	}
	for _, name := range sortedKeys(m) {
		el, ok := columnElements[name]
		if !ok {
			return fmt.Errorf("%s: unrecognized style element %q (recognized: %s)",
				path, name, strings.Join(Elements(), ", "))
		}
		if err := checkElement(path+"."+name, el, m[name]); err != nil {
			return err
		}
	}
	return nil
}

// checkAttrs checks the restricted mapping header_ and aggregate_ accept:
// the three field attributes are held to their element shapes, other keys
// pass through unchecked.
func checkAttrs(path string, m map[string]interface{}) error {
	for _, name := range []string{ElemBold, ElemColor, ElemUnderline} {
		value, ok := m[name]
		if !ok {
			continue
		}
		if err := checkElement(path+"."+name, columnElements[name], value); err != nil {
			return err
		}
	}
	return nil
}

// checkElement matches value against the element's shapes in declaration
// order; the first structural match wins and no match is a failure.
func checkElement(path string, el Element, value interface{}) error {
	for _, shape := range el.Shapes {
		if matchShape(shape, el, value) {
			return nil
		}
	}
	return shapeMismatch(path, el, value)
}

func matchShape(shape Shape, el Element, value interface{}) bool {
	switch shape {
	case ShapeBool:
		_, ok := value.(bool)
		return ok
	case ShapeString:
		_, ok := value.(string)
		return ok
	case ShapeEnum:
		s, ok := value.(string)
		if !ok {
			return false
		}
		for _, allowed := range el.Enum {
			if s == allowed {
				return true
			}
		}
		return false
	case ShapeInt:
		_, ok := AsInt(value)
		return ok
	case ShapeLookup:
		_, ok := AsLookup(value)
		return ok
	case ShapeInterval:
		_, ok := AsInterval(value)
		return ok
	case ShapeWidthSpec:
		_, ok := AsWidthSpec(value)
		return ok
	case ShapeNull:
		return value == nil
	case ShapeAny:
		return true
	}
	return false
}

func shapeMismatch(path string, el Element, value interface{}) error {
	return fmt.Errorf("%s: %s does not fit %s", path, excerpt(value), describeShapes(el))
}

func describeShapes(el Element) string {
	parts := make([]string, 0, len(el.Shapes))
	for _, shape := range el.Shapes {
		parts = append(parts, describeShape(shape, el))
	}
	return strings.Join(parts, " or ")
}

func describeShape(shape Shape, el Element) string {
	switch shape {
	case ShapeBool:
		return "boolean"
	case ShapeString:
		return "string"
	case ShapeEnum:
		quoted := make([]string, len(el.Enum))
		for i, v := range el.Enum {
			quoted[i] = fmt.Sprintf("%q", v)
		}
		return "one of " + strings.Join(quoted, ", ")
	case ShapeInt:
		return "integer"
	case ShapeLookup:
		return `a lookup mapping {"lookup": {...}}`
	case ShapeInterval:
		return `an interval list {"interval": [[low, high, style], ...]}`
	case ShapeWidthSpec:
		return "a width mapping (max, min, width, marker)"
	case ShapeAttrs:
		return "an attribute mapping (color, bold, underline)"
	case ShapeStyles:
		return "a column style mapping"
	case ShapeNull:
		return "null"
	case ShapeAny:
		return "any value"
	}
	return "unknown shape"
}

// excerpt renders a value for diagnostics, truncated so a large mapping
// does not swallow the message.
func excerpt(value interface{}) string {
	var s string
	if value == nil {
		s = "null"
	} else if m, ok := AsMapping(value); ok {
		s = fmt.Sprintf("%v", map[string]interface{}(m))
	} else {
		s = fmt.Sprintf("%v (%T)", value, value)
	}
	if len(s) > 80 {
		s = s[:77] + "..."
	}
	return s
}
