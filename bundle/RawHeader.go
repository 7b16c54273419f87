package bundle

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kpfaulkner/dxr-go/dxrerror"
	"github.com/kpfaulkner/dxr-go/util"
)

const (
	HeaderSize = 64
	Magic      = "DXR "

	// MaxBlocks caps Width*Height so a corrupt header cannot request an
	// unbounded output buffer.
	MaxBlocks = 1 << 28
)

// headerBlock mirrors the on-disk layout. Reserved fields are read and ignored.
type headerBlock struct {
	Magic      [4]byte
	Type       [8]byte
	Rsv1       uint32
	Rsv2       uint32
	Width      uint32
	Height     uint32
	Precision  uint8
	Rsv3       uint8
	Rsv4       uint16
	SampleType uint8
	Comp       uint8
	Rsv5       uint16
	Channels   uint8
	Planarity  uint8
	Rsv6       uint16
	Rsv7       uint32
	Pedestal   uint32
	Stride     uint32
	Rsv8       uint32
	Rsv9       uint64
}

// RawHeader holds the sensor geometry and sample layout of a DXR file.
// Width and Height describe the Bayer mosaic: the unbinned raster is
// 2*Width x 2*Height samples.
type RawHeader struct {
	TypeTag    string
	Layout     LayoutType
	Width      uint32
	Height     uint32
	Precision  uint8
	SampleType SampleType
	Compressed bool
	Channels   uint8
	Planarity  Planarity
	Pedestal   uint32
	Stride     uint32
}

// ParseHeader reads the fixed header block and rejects anything outside the
// supported variants. Nothing past the header block is read.
func ParseHeader(reader io.Reader) (*RawHeader, error) {
	header, err := ReadHeader(reader)
	if err != nil {
		return nil, err
	}
	if err := header.Validate(); err != nil {
		return nil, err
	}
	return header, nil
}

// ReadHeader reads the header block, checking only its size and magic.
func ReadHeader(reader io.Reader) (*RawHeader, error) {
	block := make([]byte, HeaderSize)
	if _, err := io.ReadFull(reader, block); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &dxrerror.FormatError{Reason: fmt.Sprintf("header shorter than %d bytes", HeaderSize)}
		}
		return nil, err
	}

	var hb headerBlock
	if err := binary.Read(bytes.NewReader(block), binary.LittleEndian, &hb); err != nil {
		return nil, err
	}

	if string(hb.Magic[:]) != Magic {
		return nil, &dxrerror.FormatError{Reason: fmt.Sprintf("bad magic %q", hb.Magic[:])}
	}

	tag := string(hb.Type[:])
	if i := strings.IndexByte(tag, 0); i >= 0 {
		tag = tag[:i]
	}

	header := &RawHeader{
		TypeTag:    tag,
		Layout:     ParseLayout(tag),
		Width:      hb.Width,
		Height:     hb.Height,
		Precision:  hb.Precision,
		SampleType: SampleType(hb.SampleType),
		Compressed: hb.Comp != 0,
		Channels:   hb.Channels,
		Planarity:  Planarity(hb.Planarity),
		Pedestal:   hb.Pedestal,
		Stride:     hb.Stride,
	}
	return header, nil
}

// Validate checks the header against the closed set of decodable variants.
func (h *RawHeader) Validate() error {
	if !supportedLayouts[h.Layout] {
		return &dxrerror.UnsupportedVariantError{Field: "type", Value: h.TypeTag}
	}
	if h.Precision != 10 && h.Precision != 12 {
		return &dxrerror.UnsupportedVariantError{Field: "precision", Value: h.Precision}
	}
	if !(h.Compressed && h.SampleType == SampleUnsigned) && !(!h.Compressed && h.SampleType == SampleUint16) {
		return &dxrerror.UnsupportedVariantError{
			Field: "sample type",
			Value: fmt.Sprintf("%s (compressed=%v)", h.SampleType, h.Compressed),
		}
	}
	if h.Planarity != PlanarityCoplanar {
		return &dxrerror.UnsupportedVariantError{Field: "planarity", Value: h.Planarity}
	}
	if h.Width == 0 || h.Height == 0 {
		return &dxrerror.UnsupportedVariantError{Field: "geometry", Value: fmt.Sprintf("%d x %d", h.Width, h.Height)}
	}
	if uint64(h.Width)*uint64(h.Height) > MaxBlocks {
		return &dxrerror.UnsupportedVariantError{Field: "geometry", Value: fmt.Sprintf("%d x %d too large", h.Width, h.Height)}
	}
	if uint64(h.Width)*uint64(h.Height)*uint64(h.Precision)%8 != 0 {
		return &dxrerror.UnsupportedVariantError{
			Field: "geometry",
			Value: fmt.Sprintf("%d x %d at %d bits leaves a partial byte", h.Width, h.Height, h.Precision),
		}
	}
	if h.Stride != 0 && uint64(h.Stride) < h.RowBytes() {
		return &dxrerror.UnsupportedVariantError{
			Field: "stride",
			Value: fmt.Sprintf("%d shorter than packed row of %d bytes", h.Stride, h.RowBytes()),
		}
	}
	return nil
}

// SampleWidthBits is the on-disk width of one sample: exactly Precision when
// packed, otherwise a 16 bit container.
func (h *RawHeader) SampleWidthBits() int {
	if h.Compressed {
		return int(h.Precision)
	}
	return 16
}

// RowBits is the packed length of one physical row of 2*Width samples.
func (h *RawHeader) RowBits() uint64 {
	return 2 * uint64(h.Width) * uint64(h.SampleWidthBits())
}

// RowBytes is RowBits rounded up to whole bytes.
func (h *RawHeader) RowBytes() uint64 {
	return util.CeilDiv(h.RowBits(), 8)
}

// Contiguous reports whether rows follow each other bit for bit with no
// byte alignment or padding between them.
func (h *RawHeader) Contiguous() bool {
	return h.Stride == 0
}

// RowStride is the byte distance between physical rows. For contiguous rows
// it is only exact when RowBits is a whole number of bytes.
func (h *RawHeader) RowStride() uint64 {
	if h.Stride == 0 {
		return h.RowBytes()
	}
	return uint64(h.Stride)
}

// Summary renders the header the way the conversion tool reports it.
func (h *RawHeader) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "type:       %s\n", h.TypeTag)
	fmt.Fprintf(&sb, "geometry:   %d x %d\n", h.Width, h.Height)
	fmt.Fprintf(&sb, "precision:  %d\n", h.Precision)
	fmt.Fprintf(&sb, "sample:     %s\n", h.SampleType)
	fmt.Fprintf(&sb, "compressed: %s\n", util.IfThenElse(h.Compressed, "yes", "no"))
	fmt.Fprintf(&sb, "channels:   %d\n", h.Channels)
	fmt.Fprintf(&sb, "planarity:  %s\n", h.Planarity)
	fmt.Fprintf(&sb, "stride:     %d\n", h.Stride)
	fmt.Fprintf(&sb, "black:      0x%x\n", h.Pedestal)
	return sb.String()
}
