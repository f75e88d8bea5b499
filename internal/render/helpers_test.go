package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEq(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"same strings", "menu", "menu", true},
		{"different strings", "menu", "gallery", false},
		{"int and float", 2024, 2024.0, true},
		{"int and int64", 3, int64(3), true},
		{"different numbers", 1, 2, false},
		{"number and string", 1, "1", false},
		{"string and number", "1", 1, false},
		{"both nil", nil, nil, true},
		{"nil and string", nil, "", false},
		{"bools", true, true, true},
		{"maps", map[string]any{"a": 1.0}, map[string]any{"a": 1.0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Eq(nil, tt.a, tt.b))
			assert.Equal(t, !tt.want, Nq(nil, tt.a, tt.b))
		})
	}
}

func TestAnd(t *testing.T) {
	tests := []struct {
		a, b any
		want bool
	}{
		{true, true, true},
		{true, false, false},
		{"x", "y", true},
		{"", "y", false},
		{1, 0, false},
		{nil, true, false},
		{[]any{1}, map[string]any{"k": "v"}, true},
		{[]any{}, true, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, And(nil, tt.a, tt.b), "%v && %v", tt.a, tt.b)
	}
}

func TestDefaultHelpers(t *testing.T) {
	h := DefaultHelpers()
	assert.Len(t, h, 3)
	for _, name := range []string{"eq", "nq", "and_"} {
		assert.Contains(t, h, name)
	}
}
