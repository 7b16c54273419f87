package core

import (
	"errors"
	"fmt"
	"io"

	"github.com/kpfaulkner/dxr-go/bayer"
	"github.com/kpfaulkner/dxr-go/bundle"
	"github.com/kpfaulkner/dxr-go/dxrerror"
	"github.com/kpfaulkner/dxr-go/dxrio"
	"github.com/kpfaulkner/dxr-go/options"
	"github.com/kpfaulkner/dxr-go/util"
	log "github.com/sirupsen/logrus"
)

// planeDecoder walks the coplanar Bayer0 raster. Physical rows alternate
// between Gb,B and R,Gr sample pairs, so a 2x2 block spans two rows.
type planeDecoder struct {
	br         *dxrio.Bitreader
	header     *bundle.RawHeader
	planes     bayer.Selection
	binning    bool
	debug      bool
	shift      uint
	stride     uint64
	contiguous bool
	sampleLen  int

	// folded samples of the row being read
	row []uint8

	out  *util.Matrix[uint8]
	sums *util.Matrix[uint16]
}

// decodePlanes reads 2*Height physical rows of 2*Width samples and returns
// either the full resolution raster (unselected planes zero filled) or the
// binned Width x Height raster. Output rows are allocated only once the input
// for them has been read.
func decodePlanes(br *dxrio.Bitreader, header *bundle.RawHeader, opts *options.DXROptions) (*util.Matrix[uint8], error) {
	if err := opts.Planes.Validate(); err != nil {
		return nil, err
	}

	pd := &planeDecoder{
		br:         br,
		header:     header,
		planes:     opts.Planes,
		binning:    opts.Binning,
		debug:      opts.Debug(),
		shift:      uint(header.Precision - 8),
		stride:     header.RowStride(),
		contiguous: header.Contiguous(),
		sampleLen:  header.SampleWidthBits(),
	}

	if !header.Compressed && opts.Justification == options.JustifyHigh {
		pd.shift = 8
	}

	if pd.binning {
		pd.out = util.NewEmpty2DMatrix[uint8](header.Height, header.Width)
		if pd.planes.Count() > 1 {
			pd.sums = util.NewEmpty2DMatrix[uint16](header.Height, header.Width)
		}
	} else {
		pd.out = util.NewEmpty2DMatrix[uint8](2*header.Height, 2*header.Width)
	}

	for row := uint32(0); row < 2*header.Height; row++ {
		if err := pd.readRow(row); err != nil {
			return nil, err
		}
		pd.commitRow(row)
	}

	if pd.sums != nil {
		n := uint16(pd.planes.Count())
		for i, s := range pd.sums.Data {
			pd.out.Data[i] = uint8((s + n/2) / n)
		}
	}
	return pd.out, nil
}

// readRow folds the 2*Width samples of one physical row into pd.row.
func (pd *planeDecoder) readRow(row uint32) error {

	// strided rows start on their own boundary regardless of how many bits
	// the previous row used; contiguous rows carry on from the last bit
	if !pd.contiguous {
		rowStart := uint64(row) * pd.stride
		if err := pd.br.SkipToByte(int64(rowStart)); err != nil {
			return pd.rowError(row, err)
		}
	}
	if pd.debug {
		log.Debugf("row %d at file bit offset %d", row, 8*bundle.HeaderSize+pd.br.BitsRead())
	}

	pd.row = pd.row[:0]
	for off := uint32(0); off < 2*pd.header.Width; off++ {
		s, err := pd.br.ReadBits(pd.sampleLen)
		if err != nil {
			return pd.rowError(row, err)
		}
		pd.row = append(pd.row, pd.fold(s))
	}
	return nil
}

// commitRow hands a fully read row to the output raster.
func (pd *planeDecoder) commitRow(row uint32) {
	if pd.binning {
		pd.out.EnsureRows(row/2 + 1)
		if pd.sums != nil {
			pd.sums.EnsureRows(row/2 + 1)
		}
	} else {
		pd.out.EnsureRows(row + 1)
	}

	first, second := bayer.Gb, bayer.B
	if row%2 == 1 {
		first, second = bayer.R, bayer.Gr
	}
	for col := uint32(0); col < uint32(len(pd.row)); col += 2 {
		pd.emit(row, col, first, pd.row[col])
		pd.emit(row, col+1, second, pd.row[col+1])
	}
}

// fold reduces a sample to its top 8 significant bits.
func (pd *planeDecoder) fold(sample uint32) uint8 {
	v := sample >> pd.shift
	if v > 0xFF {
		return 0xFF
	}
	return uint8(v)
}

func (pd *planeDecoder) emit(row uint32, col uint32, plane bayer.Plane, value uint8) {
	selected := pd.planes.Has(plane)

	if !pd.binning {
		pd.out.Set(row, col, util.IfThenElse(selected, value, 0))
		return
	}
	if !selected {
		return
	}
	if pd.sums != nil {
		pd.sums.IncrementBy(row/2, col/2, uint16(value))
	} else {
		pd.out.Set(row/2, col/2, value)
	}
}

func (pd *planeDecoder) rowError(row uint32, err error) error {
	offset := int64(bundle.HeaderSize) + pd.br.BytePos()
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &dxrerror.TruncatedInputError{Row: row, Offset: offset, Err: io.ErrUnexpectedEOF}
	}
	return fmt.Errorf("reading row %d at offset %d: %w", row, offset, err)
}
