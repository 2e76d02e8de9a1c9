package styles

import "sort"

// Table-level property names. Membership in this fixed set, not the
// trailing underscore, is what separates a property from a column name.
const (
	PropAggregate = "aggregate_"
	PropDefault   = "default_"
	PropHeader    = "header_"
	PropSeparator = "separator_"
	PropWidth     = "width_"
)

// Column-style element names.
const (
	ElemAlign     = "align"
	ElemAggregate = "aggregate"
	ElemBold      = "bold"
	ElemColor     = "color"
	ElemDelayed   = "delayed"
	ElemMissing   = "missing"
	ElemTransform = "transform"
	ElemUnderline = "underline"
	ElemWidth     = "width"
)

// Scope states where a style element takes effect.
type Scope int

const (
	// ScopeColumn elements are fixed per column.
	ScopeColumn Scope = iota
	// ScopeField elements may vary per rendered value.
	ScopeField
	// ScopeTable elements are table-level properties.
	ScopeTable
)

// Shape identifies one allowed representation of an element value.
// Elements with several shapes match them in declaration order.
type Shape int

const (
	// ShapeBool is a plain boolean.
	ShapeBool Shape = iota
	// ShapeString is an unrestricted string.
	ShapeString
	// ShapeEnum is a string drawn from the element's value set.
	ShapeEnum
	// ShapeInt is an integer (integral floats from JSON decoding count).
	ShapeInt
	// ShapeLookup is a {"lookup": {...}} mapping from exact field values
	// to style values.
	ShapeLookup
	// ShapeInterval is an {"interval": [[low, high, style], ...]} list of
	// half-open numeric ranges.
	ShapeInterval
	// ShapeWidthSpec is the object form of width, with optional max, min,
	// width, and marker fields and nothing else.
	ShapeWidthSpec
	// ShapeAttrs is the restricted mapping accepted by header_ and
	// aggregate_: color, bold, and underline, unknown keys tolerated.
	ShapeAttrs
	// ShapeStyles is a full column-style mapping (the default_ property).
	ShapeStyles
	// ShapeNull is an explicit null.
	ShapeNull
	// ShapeAny places no constraint; used for opaque hook values.
	ShapeAny
)

// Element describes one recognized style element or table-level property:
// its scope, the shapes it accepts, and its declared default.
type Element struct {
	Name       string
	Scope      Scope
	Shapes     []Shape
	Enum       []string
	Default    interface{}
	HasDefault bool
}

// Alignments lists the values the align element accepts.
var Alignments = []string{"left", "right", "center"}

// Colors lists the color names the color element accepts, in ANSI order.
var Colors = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

var columnElements = map[string]Element{
	ElemAlign: {
		Name:       ElemAlign,
		Scope:      ScopeColumn,
		Shapes:     []Shape{ShapeEnum},
		Enum:       Alignments,
		Default:    "left",
		HasDefault: true,
	},
	ElemAggregate: {
		Name:   ElemAggregate,
		Scope:  ScopeColumn,
		Shapes: []Shape{ShapeAny},
	},
	ElemBold: {
		Name:       ElemBold,
		Scope:      ScopeField,
		Shapes:     []Shape{ShapeBool, ShapeLookup, ShapeInterval},
		Default:    false,
		HasDefault: true,
	},
	ElemColor: {
		Name:       ElemColor,
		Scope:      ScopeField,
		Shapes:     []Shape{ShapeEnum, ShapeLookup, ShapeInterval},
		Enum:       Colors,
		Default:    "black",
		HasDefault: true,
	},
	ElemDelayed: {
		Name:   ElemDelayed,
		Scope:  ScopeField,
		Shapes: []Shape{ShapeBool, ShapeString},
	},
	ElemMissing: {
		Name:       ElemMissing,
		Scope:      ScopeColumn,
		Shapes:     []Shape{ShapeString},
		Default:    "",
		HasDefault: true,
	},
	ElemTransform: {
		Name:   ElemTransform,
		Scope:  ScopeField,
		Shapes: []Shape{ShapeAny},
	},
	ElemUnderline: {
		Name:       ElemUnderline,
		Scope:      ScopeField,
		Shapes:     []Shape{ShapeBool, ShapeLookup, ShapeInterval},
		Default:    false,
		HasDefault: true,
	},
	ElemWidth: {
		Name:       ElemWidth,
		Scope:      ScopeColumn,
		Shapes:     []Shape{ShapeInt, ShapeEnum, ShapeWidthSpec},
		Enum:       []string{"auto"},
		Default:    "auto",
		HasDefault: true,
	},
}

var tableProperties = map[string]Element{
	PropAggregate: {
		Name:       PropAggregate,
		Scope:      ScopeTable,
		Shapes:     []Shape{ShapeAttrs, ShapeNull},
		Default:    map[string]interface{}{},
		HasDefault: true,
	},
	PropDefault: {
		Name:   PropDefault,
		Scope:  ScopeTable,
		Shapes: []Shape{ShapeStyles, ShapeNull},
		Default: map[string]interface{}{
			ElemAlign: "left",
			ElemWidth: "auto",
		},
		HasDefault: true,
	},
	PropHeader: {
		Name:       PropHeader,
		Scope:      ScopeTable,
		Shapes:     []Shape{ShapeAttrs, ShapeNull},
		Default:    nil,
		HasDefault: true,
	},
	PropSeparator: {
		Name:       PropSeparator,
		Scope:      ScopeTable,
		Shapes:     []Shape{ShapeString},
		Default:    " ",
		HasDefault: true,
	},
	PropWidth: {
		Name:       PropWidth,
		Scope:      ScopeTable,
		Shapes:     []Shape{ShapeInt},
		Default:    90,
		HasDefault: true,
	},
}

// Default returns the declared default for a table-level property. Mapping
// defaults come back as fresh copies, so callers can build on the result
// without touching the registry. Column-style elements are not consulted;
// asking for anything outside the table-level set is ErrUnknownProperty.
func Default(prop string) (interface{}, error) {
	el, ok := tableProperties[prop]
	if !ok {
		return nil, NewErrorf(ErrUnknownProperty, "no table-level property %q", prop)
	}
	return cloneValue(el.Default), nil
}

// ElementDefault returns the declared default for a column-style element.
// Elements without one (aggregate, delayed, transform) report false.
func ElementDefault(name string) (interface{}, bool) {
	el, ok := columnElements[name]
	if !ok || !el.HasDefault {
		return nil, false
	}
	return cloneValue(el.Default), true
}

// IsTableProperty reports whether name is one of the reserved table-level
// property names.
func IsTableProperty(name string) bool {
	_, ok := tableProperties[name]
	return ok
}

// TableProperty returns the definition of a table-level property.
func TableProperty(name string) (Element, bool) {
	el, ok := tableProperties[name]
	return el, ok
}

// ColumnElement returns the definition of a column-style element.
func ColumnElement(name string) (Element, bool) {
	el, ok := columnElements[name]
	return el, ok
}

// TableProperties returns the reserved table-level property names, sorted.
func TableProperties() []string {
	names := make([]string, 0, len(tableProperties))
	for name := range tableProperties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Elements returns the recognized column-style element names, sorted.
func Elements() []string {
	names := make([]string, 0, len(columnElements))
	for name := range columnElements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
