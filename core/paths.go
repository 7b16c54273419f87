package core

import (
	"strings"

	"github.com/kpfaulkner/dxr-go/bayer"
	"github.com/kpfaulkner/dxr-go/dxrerror"
)

const rawExtension = ".dxr"

// OutputPath swaps the .dxr extension of input for ext. A partial selection
// is appended to the name, e.g. shot-Gr.png.
func OutputPath(input string, planes bayer.Selection, ext string) (string, error) {
	if len(input) < len(rawExtension) {
		return "", &dxrerror.PathError{Path: input, Reason: "path too short"}
	}

	base, suffix := input[:len(input)-len(rawExtension)], input[len(input)-len(rawExtension):]
	if !strings.EqualFold(suffix, rawExtension) {
		return "", &dxrerror.PathError{Path: input, Reason: "RAW file is not a .DXR file"}
	}

	if planes.IsAll() {
		return base + ext, nil
	}
	return base + "-" + planes.String() + ext, nil
}
