package imageformats

import (
	"bufio"
	"fmt"
	"io"
)

// WritePGM writes an 8 bit binary (P5) portable graymap. pix holds height
// rows of width bytes, top row first.
func WritePGM(width uint32, height uint32, pix []uint8, output io.Writer) error {

	if uint64(len(pix)) != uint64(width)*uint64(height) {
		return fmt.Errorf("pixel buffer is %d bytes, expected %d x %d", len(pix), width, height)
	}

	w := bufio.NewWriter(output)
	if _, err := fmt.Fprintf(w, "P5\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	if _, err := w.Write(pix); err != nil {
		return err
	}
	return w.Flush()
}
