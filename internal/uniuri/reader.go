package uniuri

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

const (
	// bufLen is the number of random bytes requested from the source per refill.
	bufLen = 2048

	// byteRange is the total number of possible byte values (2^8).
	byteRange = 256

	// wordRange is the total number of possible uint32 values (2^32).
	wordRange = 1 << 32
)

// ErrInvalidBound is returned by Intn if n is not in [1, 2^32].
var ErrInvalidBound = errors.New("uniuri: bound out of range")

// Reader buffers reads from a random source so that many small draws in a
// tight loop cost one large read. It is not safe for concurrent use.
type Reader struct {
	src io.Reader
	buf []byte
	pos int
	end int
}

// NewReader returns a Reader drawing from src. A nil src selects crypto/rand.
// The source is not touched until the first read.
func NewReader(src io.Reader) *Reader {
	if src == nil {
		src = rand.Reader
	}

	return &Reader{src: src}
}

// Read fills p entirely with random bytes.
func (r *Reader) Read(p []byte) (int, error) {
	var n int

	for n < len(p) {
		if r.pos == r.end {
			if err := r.fill(); err != nil {
				return n, err
			}
		}

		c := copy(p[n:], r.buf[r.pos:r.end])
		r.pos += c
		n += c
	}

	return n, nil
}

// fill replaces the buffer content with fresh bytes from the source.
func (r *Reader) fill() error {
	if r.buf == nil {
		r.buf = make([]byte, bufLen)
	}

	if _, err := io.ReadFull(r.src, r.buf); err != nil {
		r.pos, r.end = 0, 0

		return errors.Wrap(err, "uniuri: error reading random bytes")
	}

	r.pos, r.end = 0, bufLen

	return nil
}

func (r *Reader) byte() (byte, error) {
	if r.pos == r.end {
		if err := r.fill(); err != nil {
			return 0, err
		}
	}

	b := r.buf[r.pos]
	r.pos++

	return b, nil
}

// Intn returns a uniformly distributed integer in [0, n).
// Values that would introduce modulo bias are skipped.
func (r *Reader) Intn(n int) (int, error) {
	switch {
	case n <= 0, uint64(n) > wordRange:
		return 0, ErrInvalidBound
	case n == 1:
		return 0, nil
	case n <= byteRange:
		maxRb := byteRange - (byteRange % n)

		for {
			b, err := r.byte()
			if err != nil {
				return 0, err
			}

			if int(b) < maxRb {
				return int(b) % n, nil
			}
		}
	default:
		limit := uint64(wordRange) - (uint64(wordRange) % uint64(n))

		var word [4]byte

		for {
			if _, err := r.Read(word[:]); err != nil {
				return 0, err
			}

			v := uint64(binary.BigEndian.Uint32(word[:]))
			if v < limit {
				return int(v % uint64(n)), nil
			}
		}
	}
}

// Shuffle permutes b in place with a Fisher-Yates shuffle driven by Intn.
func (r *Reader) Shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := r.Intn(i + 1)
		if err != nil {
			return err
		}

		b[i], b[j] = b[j], b[i]
	}

	return nil
}
