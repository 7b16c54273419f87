package dxr_go

import (
	"image"
	"image/color"
	"io"

	"github.com/kpfaulkner/dxr-go/bundle"
	"github.com/kpfaulkner/dxr-go/core"
)

func init() {
	image.RegisterFormat("dxr", bundle.Magic, Decode, DecodeConfig)
}

// Decode returns every Bayer sample at full resolution as an *image.Gray.
func Decode(r io.Reader) (image.Image, error) {

	dxr := core.NewDXRDecoder(r, nil)

	if dxrImage, err := dxr.Decode(); err != nil {
		return nil, err
	} else {
		return dxrImage.ToImage(), nil
	}
}

func DecodeConfig(r io.Reader) (image.Config, error) {

	header, err := bundle.ParseHeader(r)
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		ColorModel: color.GrayModel,
		Width:      int(2 * header.Width),
		Height:     int(2 * header.Height),
	}, nil
}
