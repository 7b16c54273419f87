package core

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zlib"
)

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// WritePNG writes the raster as an 8 bit grayscale PNG. The header's black
// level and plane selection go into tEXt chunks since the pixel values are
// written without pedestal correction.
func WritePNG(img *DXRImage, output io.Writer) error {

	if _, err := output.Write(pngSignature); err != nil {
		return err
	}

	if err := writeIHDR(img, output); err != nil {
		return err
	}

	if err := writeText(output, "Software", "dxr-go"); err != nil {
		return err
	}
	if err := writeText(output, "Planes", img.Planes.String()); err != nil {
		return err
	}
	if h := img.Header(); h != nil {
		if err := writeText(output, "Description", h.Summary()); err != nil {
			return err
		}
	}

	if err := writeIDAT(img, output); err != nil {
		return err
	}
	return writeChunk(output, "IEND", nil)
}

func writeIHDR(img *DXRImage, output io.Writer) error {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], img.Width)
	binary.BigEndian.PutUint32(ihdr[4:], img.Height)
	ihdr[8] = 8  // bit depth
	ihdr[9] = 0  // grayscale
	ihdr[10] = 0 // deflate
	ihdr[11] = 0 // adaptive filtering, only filter type None used
	ihdr[12] = 0 // no interlace
	return writeChunk(output, "IHDR", ihdr)
}

func writeText(output io.Writer, keyword string, text string) error {
	var buf bytes.Buffer
	buf.WriteString(keyword)
	buf.WriteByte(0x00)
	buf.WriteString(text)
	return writeChunk(output, "tEXt", buf.Bytes())
}

func writeIDAT(img *DXRImage, output io.Writer) error {

	var compressedBytes bytes.Buffer
	w, err := zlib.NewWriterLevel(&compressedBytes, zlib.DefaultCompression)
	if err != nil {
		return err
	}

	for y := uint32(0); y < img.Height; y++ {
		if _, err := w.Write([]byte{0}); err != nil {
			return err
		}
		if _, err := w.Write(img.Buffer.GetRow(y)); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	return writeChunk(output, "IDAT", compressedBytes.Bytes())
}

// writeChunk emits length, type, data and the CRC over type and data.
func writeChunk(output io.Writer, chunkType string, data []byte) error {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(len(data)))
	if _, err := output.Write(b); err != nil {
		return err
	}

	typed := append([]byte(chunkType), data...)
	if _, err := output.Write(typed); err != nil {
		return err
	}

	binary.BigEndian.PutUint32(b, crc32.ChecksumIEEE(typed))
	if _, err := output.Write(b); err != nil {
		return err
	}
	return nil
}
