package array

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Unique([]string{"a", "b", "a", "b"}))
	assert.Equal(t, []int{}, Unique([]int(nil)))
}
