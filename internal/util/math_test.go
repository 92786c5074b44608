package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound1(t *testing.T) {
	assert.Equal(t, 45.5, Round1(45.5))
	assert.Equal(t, 10.7, Round1(10.666))
	assert.Equal(t, 10.6, Round1(10.64))
	assert.Equal(t, 0.0, Round1(0))
}

func TestBarWidth(t *testing.T) {
	assert.Equal(t, 100.0, BarWidth(40, 40))
	assert.Equal(t, 50.0, BarWidth(20, 40))
	assert.Equal(t, 0.0, BarWidth(0, 40))
	assert.Equal(t, 0.0, BarWidth(10, 0))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 3, Min(3, 7))
	assert.Equal(t, 7, Max(3, 7))
}
