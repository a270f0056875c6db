package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandIntBounds(t *testing.T) {
	t.Parallel()

	for range 1000 {
		n := RandInt(10, 40)
		assert.GreaterOrEqual(t, n, 10)
		assert.LessOrEqual(t, n, 40)
	}
	assert.Equal(t, 5, RandInt(5, 5))
}

func TestValidateDTO(t *testing.T) {
	t.Parallel()

	type req struct {
		Platforms []string `validate:"min=1,dive,oneof=linkedin facebook"`
	}
	assert.NoError(t, ValidateDTO(&req{Platforms: []string{"linkedin"}}))
	assert.ErrorContains(t, ValidateDTO(&req{}), "min")
	assert.ErrorContains(t, ValidateDTO(&req{Platforms: []string{"myspace"}}), "oneof")
}

func TestPtrString(t *testing.T) {
	t.Parallel()

	assert.Nil(t, PtrString(""))
	assert.Equal(t, "x", *PtrString("x"))
}
