package core

import (
	"errors"
	"io"

	"github.com/kpfaulkner/dxr-go/bundle"
	"github.com/kpfaulkner/dxr-go/dxrio"
	"github.com/kpfaulkner/dxr-go/options"
	log "github.com/sirupsen/logrus"
)

type decoderState int

const (
	stateNotStarted decoderState = iota
	stateReadingRows
	stateDone
	stateFailed
)

// DXRDecoder decodes a DXR raw file into an 8 bit grayscale raster. The
// input is read once, front to back.
type DXRDecoder struct {

	// input Stream
	in io.Reader

	options   *options.DXROptions
	header    *bundle.RawHeader
	headerErr error
	state     decoderState
}

func NewDXRDecoder(in io.Reader, opts *options.DXROptions) *DXRDecoder {
	return &DXRDecoder{
		in:      in,
		options: options.NewDXROptions(opts),
	}
}

// GetHeader parses and validates the header on first use. A rejected header
// fails the decoder; later calls return the same error.
func (dxr *DXRDecoder) GetHeader() (*bundle.RawHeader, error) {
	if dxr.header != nil || dxr.headerErr != nil {
		return dxr.header, dxr.headerErr
	}

	header, err := bundle.ParseHeader(dxr.in)
	if err != nil {
		dxr.headerErr = err
		dxr.state = stateFailed
		return nil, err
	}
	if dxr.options.Debug() {
		log.Debugf("accepted %s header %dx%d, %d bit, stride %d, contiguous %v", header.TypeTag, header.Width, header.Height, header.Precision, header.RowStride(), header.Contiguous())
	}
	dxr.header = header
	return header, nil
}

func (dxr *DXRDecoder) Decode() (*DXRImage, error) {

	if dxr.headerErr != nil {
		return nil, dxr.headerErr
	}
	if dxr.state != stateNotStarted {
		return nil, errors.New("dxr: decoder has already consumed its input")
	}

	// selection is checked before touching the input
	if err := dxr.options.Planes.Validate(); err != nil {
		return nil, err
	}

	header, err := dxr.GetHeader()
	if err != nil {
		dxr.state = stateFailed
		return nil, err
	}

	dxr.state = stateReadingRows
	br := dxrio.NewBitreader(dxr.in)
	buffer, err := decodePlanes(br, header, dxr.options)
	if err != nil {
		dxr.state = stateFailed
		return nil, err
	}
	dxr.state = stateDone

	return NewDXRImage(buffer, header, dxr.options), nil
}
