package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/kpfaulkner/dxr-go/imageformats"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type OutputFormat string

const (
	FormatPNG  OutputFormat = "png"
	FormatTIFF OutputFormat = "tiff"
	FormatBMP  OutputFormat = "bmp"
	FormatPGM  OutputFormat = "pgm"
)

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case FormatPNG, FormatTIFF, FormatBMP, FormatPGM:
		return f, nil
	case "tif":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("%s is not a supported output format", s)
}

// Extension returns the file extension, including the dot.
func (f OutputFormat) Extension() string {
	return "." + string(f)
}

// WriteImage encodes the raster in the requested format.
func WriteImage(img *DXRImage, output io.Writer, format OutputFormat) error {
	switch format {
	case FormatPNG:
		return WritePNG(img, output)
	case FormatTIFF:
		return tiff.Encode(output, img.ToImage(), &tiff.Options{Compression: tiff.Deflate})
	case FormatBMP:
		return bmp.Encode(output, img.ToImage())
	case FormatPGM:
		return imageformats.WritePGM(img.Width, img.Height, img.Pix(), output)
	}
	return fmt.Errorf("%s is not a supported output format", format)
}
