package options

import (
	"testing"

	"github.com/kpfaulkner/dxr-go/bayer"
	"github.com/stretchr/testify/assert"
)

func TestNewDXROptions(t *testing.T) {
	opt := NewDXROptions(nil)
	assert.Equal(t, bayer.All, opt.Planes)
	assert.False(t, opt.Binning)
	assert.Equal(t, JustifyLow, opt.Justification)
	assert.False(t, opt.Debug())

	src := (&DXROptions{Planes: bayer.Selection(bayer.Gr), Binning: true, Justification: JustifyHigh}).WithDebug(true)
	opt = NewDXROptions(src)
	assert.Equal(t, bayer.Selection(bayer.Gr), opt.Planes)
	assert.True(t, opt.Binning)
	assert.Equal(t, JustifyHigh, opt.Justification)
	assert.True(t, opt.Debug())
}
