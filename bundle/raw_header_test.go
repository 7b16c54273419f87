package bundle

import (
	"bytes"
	"errors"
	"testing"

	"github.com/kpfaulkner/dxr-go/dxrerror"
	"github.com/kpfaulkner/dxr-go/testcommon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	h := testcommon.ValidHeader(4, 2)
	h.Pedestal = 0x40

	header, err := ParseHeader(bytes.NewReader(testcommon.BuildHeader(h)))
	require.NoError(t, err)

	assert.Equal(t, "Bayer0", header.TypeTag)
	assert.Equal(t, LayoutBayer0, header.Layout)
	assert.Equal(t, uint32(4), header.Width)
	assert.Equal(t, uint32(2), header.Height)
	assert.Equal(t, uint8(12), header.Precision)
	assert.Equal(t, SampleUnsigned, header.SampleType)
	assert.True(t, header.Compressed)
	assert.Equal(t, uint8(4), header.Channels)
	assert.Equal(t, PlanarityCoplanar, header.Planarity)
	assert.Equal(t, uint32(0x40), header.Pedestal)
	assert.Equal(t, uint32(12), header.Stride)
	assert.Equal(t, 12, header.SampleWidthBits())
	assert.Equal(t, uint64(12), header.RowBytes())
	assert.Equal(t, uint64(12), header.RowStride())
}

func TestParseHeaderUncompressed(t *testing.T) {
	h := testcommon.ValidHeader(4, 2)
	h.Compressed = false
	h.SampleType = uint8(SampleUint16)
	h.Precision = 10
	h.Stride = 0

	header, err := ParseHeader(bytes.NewReader(testcommon.BuildHeader(h)))
	require.NoError(t, err)
	assert.Equal(t, 16, header.SampleWidthBits())
	assert.Equal(t, uint64(128), header.RowBits())
	assert.Equal(t, uint64(16), header.RowBytes())
	assert.Equal(t, uint64(16), header.RowStride())
	assert.True(t, header.Contiguous())
}

func TestParseHeaderContiguousUnalignedRows(t *testing.T) {
	h := testcommon.ValidHeader(3, 4)
	h.Precision = 10
	h.Stride = 0

	header, err := ParseHeader(bytes.NewReader(testcommon.BuildHeader(h)))
	require.NoError(t, err)
	assert.True(t, header.Contiguous())
	assert.Equal(t, uint64(60), header.RowBits())
	assert.Equal(t, uint64(8), header.RowBytes())
}

func TestParseHeaderReadsOnlyHeaderBlock(t *testing.T) {
	data := append(testcommon.BuildHeader(testcommon.ValidHeader(4, 2)), make([]byte, 100)...)
	r := bytes.NewReader(data)

	_, err := ParseHeader(r)
	require.NoError(t, err)
	assert.Equal(t, 100, r.Len())
}

func TestParseHeaderFormatErrors(t *testing.T) {

	badMagic := testcommon.ValidHeader(4, 2)
	badMagic.Magic = "XXX "
	noSpace := testcommon.ValidHeader(4, 2)
	noSpace.Magic = "DXR"

	for _, tc := range []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "short block", data: testcommon.BuildHeader(testcommon.ValidHeader(4, 2))[:63]},
		{name: "bad magic", data: testcommon.BuildHeader(badMagic)},
		{name: "magic missing trailing space", data: testcommon.BuildHeader(noSpace)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			header, err := ParseHeader(bytes.NewReader(tc.data))
			assert.Nil(t, header)
			var formatErr *dxrerror.FormatError
			assert.True(t, errors.As(err, &formatErr), "got %v", err)
		})
	}
}

func TestParseHeaderUnsupportedVariants(t *testing.T) {

	for _, tc := range []struct {
		name   string
		modify func(h *testcommon.HeaderFields)
		field  string
	}{
		{name: "Bayer1", modify: func(h *testcommon.HeaderFields) { h.Type = "Bayer1" }, field: "type"},
		{name: "YUV420", modify: func(h *testcommon.HeaderFields) { h.Type = "YUV420" }, field: "type"},
		{name: "unknown type", modify: func(h *testcommon.HeaderFields) { h.Type = "Foo" }, field: "type"},
		{name: "precision 14", modify: func(h *testcommon.HeaderFields) { h.Precision = 14 }, field: "precision"},
		{name: "precision 8", modify: func(h *testcommon.HeaderFields) { h.Precision = 8 }, field: "precision"},
		{name: "planar", modify: func(h *testcommon.HeaderFields) { h.Planarity = 0 }, field: "planarity"},
		{name: "semi-planar", modify: func(h *testcommon.HeaderFields) { h.Planarity = 2 }, field: "planarity"},
		{name: "packed uint16", modify: func(h *testcommon.HeaderFields) { h.SampleType = 4 }, field: "sample type"},
		{name: "unpacked unsigned", modify: func(h *testcommon.HeaderFields) { h.Compressed = false }, field: "sample type"},
		{name: "float", modify: func(h *testcommon.HeaderFields) { h.SampleType = 17 }, field: "sample type"},
		{name: "zero width", modify: func(h *testcommon.HeaderFields) { h.Width = 0 }, field: "geometry"},
		{name: "too large", modify: func(h *testcommon.HeaderFields) { h.Width, h.Height = 1<<16, 1<<16 }, field: "geometry"},
		{name: "partial byte", modify: func(h *testcommon.HeaderFields) {
			h.Width, h.Height, h.Precision, h.Stride = 1, 1, 10, 0
		}, field: "geometry"},
		{name: "stride too short", modify: func(h *testcommon.HeaderFields) { h.Stride = 11 }, field: "stride"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			h := testcommon.ValidHeader(4, 2)
			tc.modify(&h)

			header, err := ParseHeader(bytes.NewReader(testcommon.BuildHeader(h)))
			assert.Nil(t, header)
			var variantErr *dxrerror.UnsupportedVariantError
			require.True(t, errors.As(err, &variantErr), "got %v", err)
			assert.Equal(t, tc.field, variantErr.Field)
		})
	}
}

func TestReadHeaderSkipsValidation(t *testing.T) {
	h := testcommon.ValidHeader(4, 2)
	h.Precision = 14

	header, err := ReadHeader(bytes.NewReader(testcommon.BuildHeader(h)))
	require.NoError(t, err)
	assert.Equal(t, uint8(14), header.Precision)
	assert.Error(t, header.Validate())
}

func TestSummary(t *testing.T) {
	header, err := ParseHeader(bytes.NewReader(testcommon.BuildHeader(testcommon.ValidHeader(4, 2))))
	require.NoError(t, err)

	summary := header.Summary()
	assert.Contains(t, summary, "type:       Bayer0\n")
	assert.Contains(t, summary, "geometry:   4 x 2\n")
	assert.Contains(t, summary, "sample:     unsigned\n")
	assert.Contains(t, summary, "compressed: yes\n")
	assert.Contains(t, summary, "planarity:  coplanar\n")
	assert.Contains(t, summary, "black:      0x100\n")
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "float32", SampleFloat32.String())
	assert.Equal(t, "unknown(42)", SampleType(42).String())
	assert.Equal(t, "semi-planar", PlanaritySemiPlanar.String())
	assert.Equal(t, LayoutYUV422, ParseLayout("YUV422"))
	assert.Equal(t, LayoutUnknown, ParseLayout("bayer0"))
}
