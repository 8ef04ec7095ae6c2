package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundToMinutes(t *testing.T) {
	assert.Equal(t, 0.0, RoundToMinutes(0))
	assert.Equal(t, 1.0, RoundToMinutes(60))
	assert.Equal(t, 1.5, RoundToMinutes(90))
	assert.Equal(t, 2.5, RoundToMinutes(150))
	// 100 seconds is 1.666 minutes, rounded to one decimal place.
	assert.Equal(t, 1.7, RoundToMinutes(100))
}
