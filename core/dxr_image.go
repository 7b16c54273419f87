package core

import (
	"image"

	"github.com/kpfaulkner/dxr-go/bayer"
	"github.com/kpfaulkner/dxr-go/bundle"
	"github.com/kpfaulkner/dxr-go/options"
	"github.com/kpfaulkner/dxr-go/util"
)

// DXRImage is the decoded 8 bit grayscale raster plus the header it came from.
type DXRImage struct {
	Width  uint32
	Height uint32
	Planes bayer.Selection
	Binned bool
	Buffer *util.Matrix[uint8]
	header *bundle.RawHeader
}

func NewDXRImage(buffer *util.Matrix[uint8], header *bundle.RawHeader, opts *options.DXROptions) *DXRImage {
	return &DXRImage{
		Width:  buffer.Width,
		Height: buffer.Height,
		Planes: opts.Planes,
		Binned: opts.Binning,
		Buffer: buffer,
		header: header,
	}
}

func (img *DXRImage) Header() *bundle.RawHeader {
	return img.header
}

// Pix returns the raster, one byte per pixel with a row stride of Width.
func (img *DXRImage) Pix() []uint8 {
	return img.Buffer.Data
}

// ToImage wraps the raster as an image.Gray without copying.
func (img *DXRImage) ToImage() *image.Gray {
	return &image.Gray{
		Pix:    img.Buffer.Data,
		Stride: int(img.Width),
		Rect:   image.Rect(0, 0, int(img.Width), int(img.Height)),
	}
}
