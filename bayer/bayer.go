package bayer

import (
	"math/bits"
	"strings"

	"github.com/kpfaulkner/dxr-go/dxrerror"
)

// Plane is one of the four colour filter sub-images of a Bayer mosaic.
type Plane uint8

const (
	R  Plane = 0x1
	Gr Plane = 0x2
	Gb Plane = 0x4
	B  Plane = 0x8
)

// Selection is a set of planes.
type Selection uint8

const All = Selection(R | Gr | Gb | B)

var planeNames = []struct {
	plane Plane
	name  string
}{
	{R, "R"},
	{Gr, "Gr"},
	{Gb, "Gb"},
	{B, "B"},
}

func (p Plane) String() string {
	for _, pn := range planeNames {
		if pn.plane == p {
			return pn.name
		}
	}
	return "?"
}

// ParsePlane maps a case insensitive plane name to a single plane selection.
func ParsePlane(s string) (Selection, error) {
	for _, pn := range planeNames {
		if strings.EqualFold(s, pn.name) {
			return Selection(pn.plane), nil
		}
	}
	return 0, &dxrerror.InvalidSelectionError{Selection: s}
}

func NewSelection(planes ...Plane) Selection {
	var s Selection
	for _, p := range planes {
		s |= Selection(p)
	}
	return s
}

func (s Selection) Has(p Plane) bool {
	return s&Selection(p) != 0
}

func (s Selection) Count() int {
	return bits.OnesCount8(uint8(s & All))
}

func (s Selection) IsAll() bool {
	return s&All == All
}

// Validate rejects selections with no known plane or stray bits.
func (s Selection) Validate() error {
	if s == 0 || s&^All != 0 {
		return &dxrerror.InvalidSelectionError{Selection: s.String()}
	}
	return nil
}

// String joins plane names with '+', e.g. "R+Gb".
func (s Selection) String() string {
	var names []string
	for _, pn := range planeNames {
		if s.Has(pn.plane) {
			names = append(names, pn.name)
		}
	}
	return strings.Join(names, "+")
}
