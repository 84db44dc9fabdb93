package math3d

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// QuatSize is the encoded size of a Quat: four big-endian IEEE-754
// float32 values in the order X, Y, Z, W.
const QuatSize = 16

// ErrShortBuffer is returned when fewer than QuatSize bytes are available.
var ErrShortBuffer = errors.New("math3d: short quaternion buffer")

// AppendBinary appends the encoding of q to b.
func (q Quat) AppendBinary(b []byte) ([]byte, error) {
	for _, c := range [4]float32{q.X, q.Y, q.Z, q.W} {
		b = binary.BigEndian.AppendUint32(b, math.Float32bits(c))
	}
	return b, nil
}

// MarshalBinary encodes q in QuatSize bytes.
func (q Quat) MarshalBinary() ([]byte, error) {
	return q.AppendBinary(make([]byte, 0, QuatSize))
}

// UnmarshalBinary decodes the first QuatSize bytes of data into q.
func (q *Quat) UnmarshalBinary(data []byte) error {
	if len(data) < QuatSize {
		return fmt.Errorf("decode quaternion from %d bytes: %w", len(data), ErrShortBuffer)
	}
	q.X = math.Float32frombits(binary.BigEndian.Uint32(data[0:]))
	q.Y = math.Float32frombits(binary.BigEndian.Uint32(data[4:]))
	q.Z = math.Float32frombits(binary.BigEndian.Uint32(data[8:]))
	q.W = math.Float32frombits(binary.BigEndian.Uint32(data[12:]))
	return nil
}

// WriteTo writes the encoding of q to w.
func (q Quat) WriteTo(w io.Writer) (int64, error) {
	var buf [QuatSize]byte
	b, _ := q.AppendBinary(buf[:0])
	n, err := w.Write(b)
	return int64(n), err
}

// ReadFrom reads exactly QuatSize bytes from r into q. A short read leaves
// q unchanged.
func (q *Quat) ReadFrom(r io.Reader) (int64, error) {
	var buf [QuatSize]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			err = fmt.Errorf("read quaternion: %w", ErrShortBuffer)
		}
		return int64(n), err
	}
	return int64(n), q.UnmarshalBinary(buf[:])
}
