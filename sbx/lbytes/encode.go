package lbytes

import (
	"encoding/binary"

	"github.com/thanhnguyen2187/soundbox-flash/ds"
)

func EncodeValueUInt16(value uint16) []byte {
	bs := make([]byte, 2)
	binary.LittleEndian.PutUint16(bs, value)
	return bs
}

func EncodeValueUInt32(value uint32) []byte {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, value)
	return bs
}

// PadRight returns a copy of bs extended with fill up to n bytes.
// A bs that is already n bytes or longer is copied unchanged.
func PadRight(bs []byte, n int, fill byte) []byte {
	if len(bs) >= n {
		return ds.ShallowCopy(bs)
	}
	padded := make([]byte, 0, n)
	padded = append(padded, bs...)
	padded = append(padded, ds.Repeat(n-len(bs), fill)...)
	return padded
}
