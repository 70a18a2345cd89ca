package colorpicker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/huekit/pkg/color"
)

func TestDeriveAllSpaces(t *testing.T) {
	d := Derive(Some("hsl(0, 100%, 50%)"))
	assert.True(t, d.OK)
	assert.Equal(t, color.ModeHSL, d.Mode)
	assert.Equal(t, color.HSLA{H: 0, S: 1, L: 0.5, A: 1}, d.HSLA, "same-space tuple is parsed directly")
	assert.InDelta(t, 255, d.RGBA.R, 1e-9)
	assert.InDelta(t, 0, d.RGBA.G, 1e-9)
	assert.InDelta(t, 1, d.HSVA.V, 1e-9)
}

func TestDeriveAbsentAndMalformed(t *testing.T) {
	absent := Derive(Value{})
	assert.False(t, absent.OK)
	assert.NoError(t, absent.Err)

	bad := Derive(Some("rgb(300, 0, 0)"))
	assert.False(t, bad.OK)
	assert.Error(t, bad.Err)
	assert.Equal(t, color.ModeUnknown, bad.Mode)
}

func TestDerivedCacheRecomputesOnlyOnChange(t *testing.T) {
	var cache derivedCache

	_, fresh := cache.get(Some("#FF0000"))
	assert.True(t, fresh)
	_, fresh = cache.get(Some("#FF0000"))
	assert.False(t, fresh)
	d, fresh := cache.get(Some("#00FF00"))
	assert.True(t, fresh)
	assert.InDelta(t, 120, d.HSVA.H, 1e-9)
}
