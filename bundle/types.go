package bundle

import "fmt"

// LayoutType is the pixel layout hinted at by the header type tag.
type LayoutType int

const (
	LayoutUnknown LayoutType = iota
	LayoutBayer0
	LayoutBayer1
	LayoutBayer2
	LayoutBayer3
	LayoutGray
	LayoutRGB
	LayoutYUV
	LayoutYUV422
	LayoutYUV420
)

var layoutTags = map[string]LayoutType{
	"Bayer0": LayoutBayer0,
	"Bayer1": LayoutBayer1,
	"Bayer2": LayoutBayer2,
	"Bayer3": LayoutBayer3,
	"Gray":   LayoutGray,
	"RGB":    LayoutRGB,
	"YUV":    LayoutYUV,
	"YUV422": LayoutYUV422,
	"YUV420": LayoutYUV420,
}

// supportedLayouts lists layouts the plane decoder can unpack. Bayer0 stores
// each 2x2 block as a Gb,B row followed by an R,Gr row.
var supportedLayouts = map[LayoutType]bool{
	LayoutBayer0: true,
}

func ParseLayout(tag string) LayoutType {
	if l, ok := layoutTags[tag]; ok {
		return l
	}
	return LayoutUnknown
}

type SampleType uint8

const (
	SampleUnsigned SampleType = 0
	SampleSigned   SampleType = 1
	SampleUint8    SampleType = 2
	SampleInt8     SampleType = 3
	SampleUint16   SampleType = 4
	SampleInt16    SampleType = 5
	SampleUint32   SampleType = 6
	SampleInt32    SampleType = 7
	SampleUint64   SampleType = 8
	SampleInt64    SampleType = 9
	SampleFloat16  SampleType = 16
	SampleFloat32  SampleType = 17
	SampleFloat64  SampleType = 18
)

var sampleTypeNames = map[SampleType]string{
	SampleUnsigned: "unsigned",
	SampleSigned:   "signed",
	SampleUint8:    "uint8",
	SampleInt8:     "int8",
	SampleUint16:   "uint16",
	SampleInt16:    "int16",
	SampleUint32:   "uint32",
	SampleInt32:    "int32",
	SampleUint64:   "uint64",
	SampleInt64:    "int64",
	SampleFloat16:  "float16",
	SampleFloat32:  "float32",
	SampleFloat64:  "float64",
}

func (s SampleType) String() string {
	if name, ok := sampleTypeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint8(s))
}

type Planarity uint8

const (
	PlanarityPlanar     Planarity = 0
	PlanarityCoplanar   Planarity = 1
	PlanaritySemiPlanar Planarity = 2
)

func (p Planarity) String() string {
	switch p {
	case PlanarityPlanar:
		return "planar"
	case PlanarityCoplanar:
		return "coplanar"
	case PlanaritySemiPlanar:
		return "semi-planar"
	}
	return fmt.Sprintf("unknown(%d)", uint8(p))
}
