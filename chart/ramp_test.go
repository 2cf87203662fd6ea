package chart

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

// assertColor compares colours with a tolerance of one channel step.
func assertColor(t *testing.T, expected, actual string) {
	e, err := colorful.Hex(expected)
	assert.NoError(t, err, expected)
	a, err := colorful.Hex(actual)
	assert.NoError(t, err, actual)
	assert.InDelta(t, e.R, a.R, 1.0/255, "red of %s", actual)
	assert.InDelta(t, e.G, a.G, 1.0/255, "green of %s", actual)
	assert.InDelta(t, e.B, a.B, 1.0/255, "blue of %s", actual)
}

func warnings(hook *test.Hook, message string) int {
	n := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Message == message {
			n++
		}
	}
	return n
}

func TestRampDropsInvalidStop(t *testing.T) {
	ramp := DefaultUSMapConfig().Ramp

	valid := ramp.Valid()
	assert.Len(t, valid, 3)
	assert.Equal(t, "#331112", valid[len(valid)-1].Color)

	assert.Equal(t, "#FFE9E6", ramp.At(0))
	assert.Equal(t, "#DA3A03", ramp.At(0.15))
	assert.Equal(t, "#331112", ramp.At(0.5))
	assert.Equal(t, "#331112", ramp.At(0.9), "last valid colour not held")
	assert.Equal(t, "#331112", ramp.At(1))
}

func TestRampInterpolation(t *testing.T) {
	ramp := Ramp{
		{Offset: 1, Color: "#fff"},
		{Offset: 0, Color: "#000000"},
	}

	assert.Equal(t, "#000000", ramp.At(-1))
	assertColor(t, "#808080", ramp.At(0.5))
	assert.Equal(t, "#fff", ramp.At(2))
}

func TestRampOutOfRangeOffset(t *testing.T) {
	ramp := Ramp{
		{Offset: 0, Color: "#000000"},
		{Offset: 1.5, Color: "#ffffff"},
	}

	assert.Len(t, ramp.Valid(), 1)
	assert.Equal(t, "#000000", ramp.At(0.7))
}

func TestRampSamples(t *testing.T) {
	samples := DefaultWorldMapConfig().Ramp.Samples(5)

	expected := []string{"#0d0887", "#6d2880", "#cc4778", "#dea04d", "#f0f921"}
	assert.Len(t, samples, len(expected))
	for i := range expected {
		assertColor(t, expected[i], samples[i])
	}
	assert.Equal(t, "#0d0887", samples[0])
	assert.Equal(t, "#cc4778", samples[2])
	assert.Equal(t, "#f0f921", samples[4])
	assert.Len(t, Ramp{}.Samples(3), 3)
}

func TestRampSamplesValidateOnce(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	samples := DefaultUSMapConfig().Ramp.Samples(rampSamples)
	assert.Len(t, samples, rampSamples)
	assert.Equal(t, 1, warnings(hook, "invalid colour stop dropped"))
}

func TestUSChoroplethLogsDroppedStopOnce(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	_, err := USChoropleth(countyRows(5), countyBoundaries(), DefaultUSMapConfig(), NewLabels("en"))
	assert.Nil(t, err, "wrong USChoropleth")
	assert.Equal(t, 1, warnings(hook, "invalid colour stop dropped"))
}

func TestBubblesValidateRampOnce(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	cfg := DefaultWorldMapConfig()
	cfg.Ramp = append(cfg.Ramp, ColorStop{Offset: 0.75, Color: "orange"})

	points := bubbles(locations, cfg)
	assert.NotEmpty(t, points)
	assert.Equal(t, 1, warnings(hook, "invalid colour stop dropped"))
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("#DA3A03")
	assert.Nil(t, err)
	assert.Equal(t, "#da3a03", c.Hex())

	c, err = parseColor("#fff")
	assert.Nil(t, err)
	assert.Equal(t, "#ffffff", c.Hex())

	for _, s := range []string{"", "#", "331112", "#33111", "#3311122", "#zzzzzz"} {
		_, err := parseColor(s)
		assert.NotNil(t, err, "parsed %q", s)

		ramp := Ramp{{Offset: 0, Color: "#000000"}, {Offset: 1, Color: s}}
		assert.Len(t, ramp.Valid(), 1, "kept %q", s)
	}
}
