package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/kjkrol/magiebleue/pkg/glw"
)

func TestHeightMapSamplingClampsToZeroBorder(t *testing.T) {
	assert.Equal(t, glw.ClampToBorder, heightMapSampling.Wrap)
	assert.Equal(t, mgl32.Vec4{}, heightMapSampling.Border)
	assert.Equal(t, glw.Linear, heightMapSampling.Min)
	assert.Equal(t, glw.Linear, heightMapSampling.Mag)
	assert.NoError(t, heightMapSampling.Validate())
}
