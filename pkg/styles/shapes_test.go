package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsLookup(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		ok    bool
	}{
		{
			name: "valid_lookup",
			value: map[string]interface{}{
				"lookup": map[string]interface{}{"ok": "green"},
			},
			ok: true,
		},
		{
			name:  "empty_mapping_is_not_a_lookup",
			value: map[string]interface{}{},
			ok:    false,
		},
		{
			name: "extra_key_disqualifies",
			value: map[string]interface{}{
				"lookup": map[string]interface{}{},
				"other":  true,
			},
			ok: false,
		},
		{
			name: "inner_value_must_be_a_mapping",
			value: map[string]interface{}{
				"lookup": []interface{}{"ok"},
			},
			ok: false,
		},
		{
			name:  "scalar_is_not_a_lookup",
			value: true,
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := AsLookup(tt.value)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestLookupGet(t *testing.T) {
	lookup, ok := AsLookup(map[string]interface{}{
		"lookup": map[string]interface{}{
			"BAD": "red",
			"42":  "green",
		},
	})
	require.True(t, ok)

	style, hit := lookup.Get("BAD")
	assert.True(t, hit)
	assert.Equal(t, "red", style)

	_, hit = lookup.Get("GOOD")
	assert.False(t, hit)
}

func TestAsInterval(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		ok    bool
		rules int
	}{
		{
			name: "valid_rules",
			value: map[string]interface{}{
				"interval": []interface{}{
					[]interface{}{0, 50, "green"},
					[]interface{}{50, 80, "yellow"},
					[]interface{}{80, nil, "red"},
				},
			},
			ok:    true,
			rules: 3,
		},
		{
			name: "null_bounds_are_unbounded",
			value: map[string]interface{}{
				"interval": []interface{}{
					[]interface{}{nil, nil, true},
				},
			},
			ok:    true,
			rules: 1,
		},
		{
			name: "float_bounds",
			value: map[string]interface{}{
				"interval": []interface{}{
					[]interface{}{0.5, 99.5, "cyan"},
				},
			},
			ok:    true,
			rules: 1,
		},
		{
			name:  "empty_mapping_is_not_an_interval",
			value: map[string]interface{}{},
			ok:    false,
		},
		{
			name: "short_rule_disqualifies",
			value: map[string]interface{}{
				"interval": []interface{}{
					[]interface{}{0, 50},
				},
			},
			ok: false,
		},
		{
			name: "every_rule_is_checked",
			value: map[string]interface{}{
				"interval": []interface{}{
					[]interface{}{0, 50, "green"},
					[]interface{}{"low", 80, "yellow"},
				},
			},
			ok: false,
		},
		{
			name: "style_entry_must_be_string_or_bool",
			value: map[string]interface{}{
				"interval": []interface{}{
					[]interface{}{0, 50, 7},
				},
			},
			ok: false,
		},
		{
			name: "rules_must_be_a_list",
			value: map[string]interface{}{
				"interval": map[string]interface{}{},
			},
			ok: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval, ok := AsInterval(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Len(t, interval, tt.rules)
			}
		})
	}
}

func TestIntervalMatch(t *testing.T) {
	interval, ok := AsInterval(map[string]interface{}{
		"interval": []interface{}{
			[]interface{}{0, 50, "green"},
			[]interface{}{25, 80, "yellow"},
			[]interface{}{80, nil, "red"},
		},
	})
	require.True(t, ok)

	tests := []struct {
		name  string
		x     float64
		style interface{}
		hit   bool
	}{
		{name: "inside_first_rule", x: 10, style: "green", hit: true},
		{name: "overlap_prefers_first_rule", x: 30, style: "green", hit: true},
		{name: "upper_bound_is_exclusive", x: 50, style: "yellow", hit: true},
		{name: "lower_bound_is_inclusive", x: 80, style: "red", hit: true},
		{name: "open_upper_bound_is_unbounded", x: 1e9, style: "red", hit: true},
		{name: "below_every_rule_misses", x: -1, hit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style, hit := interval.Match(tt.x)
			assert.Equal(t, tt.hit, hit)
			if tt.hit {
				assert.Equal(t, tt.style, style)
			}
		})
	}
}

func TestAsWidthSpec(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		ok    bool
		check func(t *testing.T, spec WidthSpec)
	}{
		{
			name:  "full_spec",
			value: map[string]interface{}{"max": 20, "min": 5, "width": 12, "marker": "…"},
			ok:    true,
			check: func(t *testing.T, spec WidthSpec) {
				require.NotNil(t, spec.Width)
				assert.Equal(t, 12, *spec.Width)
				require.NotNil(t, spec.Min)
				assert.Equal(t, 5, *spec.Min)
				require.NotNil(t, spec.Max)
				assert.Equal(t, 20, *spec.Max)
				assert.Equal(t, "…", spec.Marker)
			},
		},
		{
			name:  "empty_spec_is_valid",
			value: map[string]interface{}{},
			ok:    true,
			check: func(t *testing.T, spec WidthSpec) {
				assert.Nil(t, spec.Width)
				assert.Nil(t, spec.Min)
				assert.Nil(t, spec.Max)
				assert.Nil(t, spec.Marker)
			},
		},
		{
			name:  "null_bounds_are_allowed",
			value: map[string]interface{}{"max": nil, "min": nil},
			ok:    true,
			check: func(t *testing.T, spec WidthSpec) {
				assert.Nil(t, spec.Min)
				assert.Nil(t, spec.Max)
			},
		},
		{
			name:  "boolean_marker",
			value: map[string]interface{}{"marker": true},
			ok:    true,
			check: func(t *testing.T, spec WidthSpec) {
				assert.Equal(t, true, spec.Marker)
			},
		},
		{
			name:  "integral_float_width_counts_as_integer",
			value: map[string]interface{}{"width": float64(12)},
			ok:    true,
			check: func(t *testing.T, spec WidthSpec) {
				require.NotNil(t, spec.Width)
				assert.Equal(t, 12, *spec.Width)
			},
		},
		{
			name:  "fractional_width_disqualifies",
			value: map[string]interface{}{"width": 12.5},
			ok:    false,
		},
		{
			name:  "null_width_disqualifies",
			value: map[string]interface{}{"width": nil},
			ok:    false,
		},
		{
			name:  "unknown_key_disqualifies",
			value: map[string]interface{}{"widht": 12},
			ok:    false,
		},
		{
			name:  "numeric_marker_disqualifies",
			value: map[string]interface{}{"marker": 3},
			ok:    false,
		},
		{
			name:  "non_mapping_disqualifies",
			value: "auto",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, ok := AsWidthSpec(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok && tt.check != nil {
				tt.check(t, spec)
			}
		})
	}
}

func TestAsNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected float64
		ok       bool
	}{
		{name: "int", value: 7, expected: 7, ok: true},
		{name: "int64_from_toml", value: int64(7), expected: 7, ok: true},
		{name: "float64_from_json", value: 7.5, expected: 7.5, ok: true},
		{name: "uint64", value: uint64(7), expected: 7, ok: true},
		{name: "string_is_not_numeric", value: "7", ok: false},
		{name: "bool_is_not_numeric", value: true, ok: false},
		{name: "nil_is_not_numeric", value: nil, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsNumber(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestAsInt(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected int
		ok       bool
	}{
		{name: "int", value: 90, expected: 90, ok: true},
		{name: "int64", value: int64(90), expected: 90, ok: true},
		{name: "integral_float", value: float64(90), expected: 90, ok: true},
		{name: "fractional_float", value: 90.5, ok: false},
		{name: "string", value: "90", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsInt(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestResolveField(t *testing.T) {
	lookup := map[string]interface{}{
		"lookup": map[string]interface{}{"BAD": "red", "42": "green"},
	}
	interval := map[string]interface{}{
		"interval": []interface{}{
			[]interface{}{0, 50, "green"},
			[]interface{}{50, nil, "red"},
		},
	}

	tests := []struct {
		name     string
		element  interface{}
		value    interface{}
		expected interface{}
		ok       bool
	}{
		{name: "plain_value_applies_to_everything", element: "blue", value: "anything", expected: "blue", ok: true},
		{name: "plain_bool_applies", element: true, value: 3, expected: true, ok: true},
		{name: "nil_element_resolves_to_nil", element: nil, value: "x", expected: nil, ok: true},
		{name: "lookup_hits_exact_value", element: lookup, value: "BAD", expected: "red", ok: true},
		{name: "lookup_formats_non_string_values", element: lookup, value: 42, expected: "green", ok: true},
		{name: "lookup_miss_defers_to_default", element: lookup, value: "GOOD", ok: false},
		{name: "interval_matches_numeric_value", element: interval, value: 10, expected: "green", ok: true},
		{name: "interval_matches_float_value", element: interval, value: 99.9, expected: "red", ok: true},
		{name: "interval_needs_a_numeric_value", element: interval, value: "fast", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveField(tt.element, tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
