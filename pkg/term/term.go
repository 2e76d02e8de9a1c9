// Package term translates style documents into lipgloss styles for
// terminal rendering. It resolves field-scoped elements against concrete
// values and maps the schema's color names onto the ANSI palette; painting
// cells is left to the render layer.
package term

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vsoch/pyout/pkg/styles"
)

// ansiColors maps the schema color names to ANSI palette indexes.
var ansiColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
}

// CellStyle builds the lipgloss style for one cell. The column mapping is
// an effective column style (see styles.EffectiveColumn); value is the
// cell's field value, used to resolve lookup and interval elements.
func CellStyle(column map[string]interface{}, value interface{}) lipgloss.Style {
	style := lipgloss.NewStyle()

	if on, ok := resolveBool(column[styles.ElemBold], value); ok && on {
		style = style.Bold(true)
	}
	if on, ok := resolveBool(column[styles.ElemUnderline], value); ok && on {
		style = style.Underline(true)
	}
	if name, ok := resolveColor(column[styles.ElemColor], value); ok {
		if code, known := ansiColors[name]; known {
			style = style.Foreground(lipgloss.Color(code))
		}
	}

	return applyLayout(style, column)
}

// HeaderStyle builds the style for one header cell from the document's
// header_ attributes. Lookup and interval attributes resolve against the
// column name; a null or absent header_ yields the zero style.
func HeaderStyle(doc styles.Document, column string) lipgloss.Style {
	return attrsStyle(doc[styles.PropHeader], column)
}

// SummaryStyle builds the style for one aggregate cell from aggregate_,
// resolving against the rendered aggregate value.
func SummaryStyle(doc styles.Document, value interface{}) lipgloss.Style {
	return attrsStyle(doc[styles.PropAggregate], value)
}

func attrsStyle(attrs, value interface{}) lipgloss.Style {
	style := lipgloss.NewStyle()
	m, ok := styles.AsMapping(attrs)
	if !ok {
		return style
	}

	if on, ok := resolveBool(m[styles.ElemBold], value); ok && on {
		style = style.Bold(true)
	}
	if on, ok := resolveBool(m[styles.ElemUnderline], value); ok && on {
		style = style.Underline(true)
	}
	if name, ok := resolveColor(m[styles.ElemColor], value); ok {
		if code, known := ansiColors[name]; known {
			style = style.Foreground(lipgloss.Color(code))
		}
	}

	return style
}

func resolveBool(element, value interface{}) (bool, bool) {
	resolved, ok := styles.ResolveField(element, value)
	if !ok || resolved == nil {
		return false, false
	}
	on, ok := resolved.(bool)
	return on, ok
}

func resolveColor(element, value interface{}) (string, bool) {
	resolved, ok := styles.ResolveField(element, value)
	if !ok || resolved == nil {
		return "", false
	}
	name, ok := resolved.(string)
	return name, ok
}

// applyLayout carries the column's align and width hints onto the style.
// Only a pinned width applies; "auto" and min/max-only specs leave sizing
// to the render layer.
func applyLayout(style lipgloss.Style, column map[string]interface{}) lipgloss.Style {
	switch column[styles.ElemAlign] {
	case "left":
		style = style.Align(lipgloss.Left)
	case "center":
		style = style.Align(lipgloss.Center)
	case "right":
		style = style.Align(lipgloss.Right)
	}

	if width, ok := fixedWidth(column[styles.ElemWidth]); ok {
		style = style.Width(width)
	}

	return style
}

func fixedWidth(element interface{}) (int, bool) {
	if n, ok := styles.AsInt(element); ok {
		return n, true
	}
	if spec, ok := styles.AsWidthSpec(element); ok && spec.Width != nil {
		return *spec.Width, true
	}
	return 0, false
}
