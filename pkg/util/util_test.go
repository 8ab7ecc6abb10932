package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInPlaceFilter(t *testing.T) {
	values := []int{1, 2, 3, 4, 5, 6}

	InPlaceFilter(&values, func(value int) bool {
		return value%2 == 0
	})

	assert.Equal(t, []int{2, 4, 6}, values)

	InPlaceFilter(&values, func(value int) bool {
		return false
	})

	assert.Empty(t, values)
}

func TestTrimString(t *testing.T) {
	assert.Equal(t, "ABC", TrimString("ABCDEF", 3))
	assert.Equal(t, "AB", TrimString("AB", 3))
	assert.Equal(t, "", TrimString("", 3))
}

func TestGetEnvironmentVariables(t *testing.T) {
	t.Setenv("TRAVIGO_TEST_VALUE", "a=b")

	assert.Equal(t, "a=b", GetEnvironmentVariables()["TRAVIGO_TEST_VALUE"])
}

func TestGetEnvironmentVariable(t *testing.T) {
	t.Setenv("TRAVIGO_TEST_SET", "value")
	t.Setenv("TRAVIGO_TEST_EMPTY", "")

	assert.Equal(t, "value", GetEnvironmentVariable("TRAVIGO_TEST_SET", "fallback"))
	assert.Equal(t, "fallback", GetEnvironmentVariable("TRAVIGO_TEST_EMPTY", "fallback"))
}
