package glw

import (
	"testing"
	"testing/fstest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Everything here runs before any GL call, so no context is needed.

func TestSetScaleRejectsMipmapMagnification(t *testing.T) {
	for _, op := range []TexScaleOp{
		NearestMipmapNearest,
		LinearMipmapNearest,
		NearestMipmapLinear,
		LinearMipmapLinear,
	} {
		err := SetScale(Tex2D, Magnify, op)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidMagFilter))
		assert.Equal(t, ErrInvalidMagFilter, errors.Cause(err))

		assert.ErrorIs(t, SetDualScale(Tex2D, op), ErrInvalidMagFilter)
	}
}

func TestTexScaleOpValidFor(t *testing.T) {
	tests := []struct {
		op    TexScaleOp
		scale TexScaleType
		valid bool
	}{
		{Nearest, Magnify, true},
		{Linear, Magnify, true},
		{LinearMipmapLinear, Magnify, false},
		{NearestMipmapNearest, Magnify, false},
		{LinearMipmapLinear, Minify, true},
		{Nearest, Minify, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.op.ValidFor(tt.scale), "op 0x%x scale 0x%x", int32(tt.op), int32(tt.scale))
	}
}

func TestShaderTypeString(t *testing.T) {
	assert.Equal(t, "vertex", Vertex.String())
	assert.Equal(t, "tessellation control", TessControl.String())
	assert.Equal(t, "tessellation evaluation", TessEvaluation.String())
	assert.Equal(t, "geometry", Geometry.String())
	assert.Equal(t, "fragment", Fragment.String())
	assert.Equal(t, "unknown", ShaderType(0).String())
}

func TestReadStages(t *testing.T) {
	fsys := fstest.MapFS{
		"a.vert": {Data: []byte("vert src")},
		"a.tese": {Data: []byte("tese src")},
		"a.frag": {Data: []byte("frag src")},
	}
	stages, err := ReadStages(fsys, StagePaths{Vertex: "a.vert", TessEvaluation: "a.tese", Fragment: "a.frag"})
	require.NoError(t, err)
	assert.Equal(t, Stages{Vertex: "vert src", TessEvaluation: "tese src", Fragment: "frag src"}, stages)
}

func TestReadStagesMissingFile(t *testing.T) {
	fsys := fstest.MapFS{"a.frag": {Data: []byte("frag src")}}

	_, err := ReadStages(fsys, StagePaths{Vertex: "missing.vert", Fragment: "a.frag"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vertex read error")

	_, err = ReadStages(fsys, StagePaths{Vertex: "a.frag", Geometry: "missing.geom", Fragment: "a.frag"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geometry read error")
}

func TestStagesRequireVertexAndFragment(t *testing.T) {
	var visited []ShaderType
	visit := func(ty ShaderType, _ string) error {
		visited = append(visited, ty)
		return nil
	}

	err := Stages{Vertex: "v"}.each(visit)
	require.Error(t, err)
	assert.Equal(t, "fragment shader source is required", err.Error())

	visited = nil
	err = Stages{Fragment: "f"}.each(visit)
	require.Error(t, err)
	assert.Equal(t, "vertex shader source is required", err.Error())
	assert.Empty(t, visited)
}

func TestStagesVisitInPipelineOrder(t *testing.T) {
	var visited []ShaderType
	err := Stages{
		Vertex:         "v",
		TessControl:    "tc",
		TessEvaluation: "te",
		Fragment:       "f",
	}.each(func(ty ShaderType, _ string) error {
		visited = append(visited, ty)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []ShaderType{Vertex, TessControl, TessEvaluation, Fragment}, visited)
}

func TestStagesStopAtFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := Stages{Vertex: "v", Geometry: "g", Fragment: "f"}.each(func(ty ShaderType, _ string) error {
		calls++
		if ty == Geometry {
			return boom
		}
		return nil
	})
	assert.Equal(t, boom, err)
	assert.Equal(t, 2, calls)
}

func TestFillNoiseIgnoresEmptySize(t *testing.T) {
	assert.NotPanics(t, func() { FillNoise(0, 1) })
	assert.NotPanics(t, func() { FillNoise(-4, 1) })
}

func TestSamplingApplyRejectsBeforeAnyState(t *testing.T) {
	s := Sampling{Wrap: ClampToBorder, Min: Linear, Mag: LinearMipmapNearest}
	assert.ErrorIs(t, s.Validate(), ErrInvalidMagFilter)
	assert.ErrorIs(t, s.Apply(Tex2D), ErrInvalidMagFilter)

	s.Mag = Nearest
	assert.NoError(t, s.Validate())
}
