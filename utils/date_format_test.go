package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatStartDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid date", "2024-03-15", "Mar 2024"},
		{"january", "2025-01-01", "Jan 2025"},
		{"empty", "", ""},
		{"garbage", "invalid", ""},
		{"wrong order", "15-03-2024", ""},
		{"month out of range", "2024-13-01", ""},
		{"trailing time", "2024-03-15T10:00:00Z", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatStartDate(tt.input))
		})
	}
}
