package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailVisibility_DefaultsHidden(t *testing.T) {
	var d DetailVisibility

	assert.False(t, d.Visible(0))
	assert.False(t, d.Visible(42))
	assert.Equal(t, 0, d.Len())
}

func TestDetailVisibility_ToggleIsIndependent(t *testing.T) {
	var d DetailVisibility

	assert.True(t, d.Toggle(0))
	assert.True(t, d.Toggle(2))
	assert.False(t, d.Visible(1))

	assert.False(t, d.Toggle(0))
	assert.False(t, d.Visible(0))
	assert.True(t, d.Visible(2))
}

func TestDetailVisibility_DoubleToggleRestores(t *testing.T) {
	var d DetailVisibility

	d.Toggle(5)
	d.Toggle(5)
	assert.False(t, d.Visible(5))
}

func TestDetailVisibility_Reset(t *testing.T) {
	var d DetailVisibility
	d.Toggle(0)
	d.Toggle(3)

	d.Reset()

	assert.False(t, d.Visible(0))
	assert.False(t, d.Visible(3))
	assert.Equal(t, 0, d.Len())
}
