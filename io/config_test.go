package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gcfg.v1"
)

func TestExampleFilesParse(t *testing.T) {
	tests := []struct {
		name    string
		example string
		wrap    interface{}
	}{
		{"FriedmannCompare", ExampleFriedmannCompareFile, DefaultFriedmannCompareWrapper()},
		{"FreezeOut", ExampleFreezeOutFile, DefaultFreezeOutWrapper()},
		{"RotationCurve", ExampleRotationCurveFile, DefaultRotationCurveWrapper()},
		{"MassProfile", ExampleMassProfileFile, DefaultMassProfileWrapper()},
		{"Toomre", ExampleToomreFile, DefaultToomreWrapper()},
		{"DiskVideo", ExampleDiskVideoFile, DefaultDiskVideoWrapper()},
		{"DiskStructure", ExampleDiskStructureFile, DefaultDiskStructureWrapper()},
		{"Brightness", ExampleBrightnessFile, DefaultBrightnessWrapper()},
		{"ScaleLength", ExampleScaleLengthFile, DefaultScaleLengthWrapper()},
		{"ColorGradient", ExampleColorGradientFile, DefaultColorGradientWrapper()},
	}

	for _, test := range tests {
		err := gcfg.ReadStringInto(test.wrap, test.example)
		assert.NoError(t, err, test.name)
	}
}

func TestFriedmannCompareDefaults(t *testing.T) {
	wrap := DefaultFriedmannCompareWrapper()
	require.NoError(t, gcfg.ReadStringInto(wrap, ExampleFriedmannCompareFile))
	con := &wrap.FriedmannCompare

	assert.Equal(t, "path/to/friedmann.png", con.Output)
	assert.Equal(t, 0.309, con.OmegaM)
	assert.Equal(t, 2.5, con.AMax)
	assert.Equal(t, 400, con.Samples)
	assert.True(t, con.ValidOutput())
	assert.True(t, con.ValidBackend())
	assert.False(t, con.ValidInput())
	assert.False(t, con.ValidLogFile())
}

func TestConfigOverridesDefaults(t *testing.T) {
	wrap := DefaultFreezeOutWrapper()
	text := `[FreezeOut]
Output = out.png
XMax = 80
PlateauMin = 60
Backend = pyplot`
	require.NoError(t, gcfg.ReadStringInto(wrap, text))
	con := &wrap.FreezeOut

	assert.Equal(t, 80.0, con.XMax)
	assert.Equal(t, 60.0, con.PlateauMin)
	assert.Equal(t, "pyplot", con.Backend)
	assert.Equal(t, 1000, con.Samples)
	assert.True(t, con.ValidPlateauMin())
	assert.True(t, con.ValidBackend())
}

func TestValidPredicates(t *testing.T) {
	fo := &FreezeOutConfig{XMax: 50, PlateauMin: 60}
	assert.False(t, fo.ValidPlateauMin(), "plateau floor beyond the curve")

	rc := &RotationCurveConfig{VelScale: -1, RadScale: 1}
	assert.False(t, rc.ValidVelScale())
	assert.True(t, rc.ValidRadScale())

	br := &BrightnessConfig{InnerFrac: 0.05, OuterFrac: 0.85}
	assert.True(t, br.ValidWindow())
	br.OuterFrac = 0.01
	assert.False(t, br.ValidWindow())

	sl := &ScaleLengthConfig{InnerFrac: 0.25, OuterFrac: 0.9}
	assert.True(t, sl.WindowSet())
	assert.True(t, sl.ValidWindow())
	sl.OuterFrac = 0.1
	assert.False(t, sl.ValidWindow())
	sl = &ScaleLengthConfig{}
	assert.False(t, sl.WindowSet())

	cg := &ColorGradientConfig{Blue: "g", Red: "g", Smooth: 4}
	assert.False(t, cg.ValidBands())
	assert.False(t, cg.ValidSmooth())
	cg.Red = "r"
	cg.Smooth = 5
	assert.True(t, cg.ValidBands())
	assert.True(t, cg.ValidSmooth())

	dv := &DiskVideoConfig{Size: 512, FPS: 25, Limit: 50, VLimit: 300}
	assert.True(t, dv.ValidSize())
	assert.True(t, dv.ValidFPS())
	dv.FPS = 0
	assert.False(t, dv.ValidFPS())
}

func TestRejectsUnknownKeys(t *testing.T) {
	wrap := DefaultToomreWrapper()
	err := gcfg.ReadStringInto(wrap, "[Toomre]\nWavelength = 21cm")
	assert.Error(t, err)
}
