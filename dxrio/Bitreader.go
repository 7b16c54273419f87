package dxrio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Bitreader is the read cursor over the packed pixel stream. Samples are
// assembled least-significant-bit first within each byte, bytes taken in
// stream order, and the cache is refilled one byte at a time.
type Bitreader struct {
	in        *bufio.Reader
	cache     uint64
	cacheBits int
	bitsRead  int64
}

func NewBitreader(in io.Reader) (br *Bitreader) {
	br = &Bitreader{}
	if b, ok := in.(*bufio.Reader); ok {
		br.in = b
	} else {
		br.in = bufio.NewReader(in)
	}
	return
}

func (br *Bitreader) fill(bits int) error {
	for br.cacheBits < bits {
		b, err := br.in.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && br.cacheBits > 0 {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		br.cache |= uint64(b) << uint64(br.cacheBits)
		br.cacheBits += 8
	}
	return nil
}

func (br *Bitreader) ReadBits(bits int) (uint32, error) {
	if bits == 0 {
		return 0, nil
	}
	if bits < 0 || bits > 32 {
		return 0, errors.New("Must read between 0-32 bits, inclusive")
	}

	if err := br.fill(bits); err != nil {
		return 0, err
	}
	ret := uint32(br.cache & (1<<uint64(bits) - 1))
	br.cache >>= uint64(bits)
	br.cacheBits -= bits
	br.bitsRead += int64(bits)
	return ret, nil
}

// ShowBits returns the next bits without consuming them.
func (br *Bitreader) ShowBits(bits int) (uint32, error) {
	if bits == 0 {
		return 0, nil
	}
	if bits < 0 || bits > 32 {
		return 0, errors.New("Must show between 0-32 bits, inclusive")
	}
	if err := br.fill(bits); err != nil {
		return 0, err
	}
	return uint32(br.cache & (1<<uint64(bits) - 1)), nil
}

func (br *Bitreader) SkipBits(bits int64) error {
	for bits > 0 {
		n := min(bits, 32)
		if _, err := br.ReadBits(int(n)); err != nil {
			return err
		}
		bits -= n
	}
	return nil
}

func (br *Bitreader) ReadBool() (bool, error) {
	v, err := br.ReadBits(1)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// ZeroPadToByte drops whatever is left of a partially consumed byte.
func (br *Bitreader) ZeroPadToByte() {
	remaining := br.cacheBits % 8
	br.cache >>= uint64(remaining)
	br.cacheBits -= remaining
	br.bitsRead += int64(remaining)
}

// SkipToByte moves the cursor forward to an absolute byte offset from where
// the reader started, discarding any partial byte and cached bits on the way.
func (br *Bitreader) SkipToByte(offset int64) error {
	br.ZeroPadToByte()
	current := br.bitsRead / 8
	if offset < current {
		return fmt.Errorf("cannot seek backwards from byte %d to %d", current, offset)
	}

	n := offset - current
	cached := min(n, int64(br.cacheBits/8))
	if cached*8 >= 64 {
		br.cache = 0
	} else {
		br.cache >>= uint64(cached * 8)
	}
	br.cacheBits -= int(cached * 8)
	br.bitsRead += cached * 8
	n -= cached

	if n == 0 {
		return nil
	}
	discarded, err := br.in.Discard(int(n))
	br.bitsRead += int64(discarded) * 8
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}

func (br *Bitreader) AtEnd() bool {
	_, err := br.ShowBits(1)
	return err != nil
}

func (br *Bitreader) BitsRead() int64 {
	return br.bitsRead
}

// BytePos is the offset of the byte holding the next unread bit.
func (br *Bitreader) BytePos() int64 {
	return br.bitsRead / 8
}
