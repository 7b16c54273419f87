package dxrerror

import "fmt"

// FormatError is returned when the input is not a DXR container at all
// (short header block or wrong magic).
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("dxr: invalid format: %s", e.Reason)
}

// UnsupportedVariantError is returned when a header field is valid DXR but
// outside the subset this decoder understands.
type UnsupportedVariantError struct {
	Field string
	Value any
}

func (e *UnsupportedVariantError) Error() string {
	return fmt.Sprintf("dxr: unsupported %s: %v", e.Field, e.Value)
}

// TruncatedInputError is returned when the pixel data ends before all rows
// have been read.
type TruncatedInputError struct {
	Row    uint32
	Offset int64
	Err    error
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("dxr: truncated input at row %d (byte offset %d): %v", e.Row, e.Offset, e.Err)
}

func (e *TruncatedInputError) Unwrap() error {
	return e.Err
}

// InvalidSelectionError is returned for an empty or unrecognised plane
// selection.
type InvalidSelectionError struct {
	Selection string
}

func (e *InvalidSelectionError) Error() string {
	if e.Selection == "" {
		return "dxr: empty plane selection"
	}
	return fmt.Sprintf("dxr: unknown plane %q", e.Selection)
}

// PathError is returned when an output path cannot be derived from the input path.
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("dxr: %s: %s", e.Path, e.Reason)
}
