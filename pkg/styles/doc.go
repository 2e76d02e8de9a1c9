// Package styles implements the declarative style model for tabular
// terminal output: the schema of recognized style elements, the adopt
// merge that layers one style document over another, and validation of
// documents against the schema.
//
// A style document is a plain JSON-compatible mapping. Top-level keys
// are either table-level properties (aggregate_, default_, header_,
// separator_, width_) or column names; column values are mappings of
// style elements such as align, color, or width. Elements scoped to
// fields may swap a plain value for a lookup or interval mapping that
// picks the effective value per rendered cell.
//
// Documents are treated as immutable: every operation returns a new
// document and never modifies its inputs.
package styles
