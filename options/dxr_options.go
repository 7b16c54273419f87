package options

import "github.com/kpfaulkner/dxr-go/bayer"

// Justification describes where the significant bits sit inside a 16 bit
// uncompressed sample container.
type Justification int

const (
	// JustifyLow folds by precision-8, treating the low bits as significant.
	JustifyLow Justification = iota
	// JustifyHigh folds by 8, treating the container as left-justified.
	JustifyHigh
)

type DXROptions struct {
	debug         bool
	Planes        bayer.Selection
	Binning       bool
	Justification Justification
}

// NewDXROptions copies the supplied options, defaulting to all planes
// without binning.
func NewDXROptions(options *DXROptions) *DXROptions {

	opt := &DXROptions{
		Planes: bayer.All,
	}
	if options != nil {
		opt.debug = options.debug
		opt.Planes = options.Planes
		opt.Binning = options.Binning
		opt.Justification = options.Justification
	}
	return opt
}

func (o *DXROptions) WithDebug(debug bool) *DXROptions {
	o.debug = debug
	return o
}

func (o *DXROptions) Debug() bool {
	return o.debug
}
