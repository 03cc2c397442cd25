package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single", "go", []string{"go"}},
		{"trims segments", " go ,  web , api", []string{"go", "web", "api"}},
		{"drops empty segments", "go,,web,", []string{"go", "web"}},
		{"only commas", ",,,", nil},
		{"keeps duplicates and order", "go,web,go", []string{"go", "web", "go"}},
		{"keeps inner spaces", "machine learning, go", []string{"machine learning", "go"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.in))
		})
	}
}
