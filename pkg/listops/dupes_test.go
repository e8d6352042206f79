package listops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasDuplicates(t *testing.T) {
	tests := []struct {
		name       string
		collection []int
		want       bool
	}{
		{"nil", nil, false},
		{"empty", []int{}, false},
		{"all distinct", []int{1, 2, 3}, false},
		{"one repeat", []int{1, 2, 1}, true},
		{"all equal", []int{7, 7, 7}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasDuplicates(tt.collection))
		})
	}
}

func TestHasDuplicatesStrings(t *testing.T) {
	assert.True(t, HasDuplicates([]string{"a", "b", "a"}))
	assert.False(t, HasDuplicates([]string{"a", "b"}))
}
