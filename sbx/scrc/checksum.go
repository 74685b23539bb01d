// Package scrc computes the 16-bit checksum used by both the header and the payload
// of every entry inside a flash archive.
package scrc

import (
	"github.com/sigurn/crc16"
)

// Params describes the CRC-16 variant of the format:
// polynomial 0x1021, zero initial register, no reflection and no final XOR.
var Params = crc16.Params{
	Poly:   0x1021,
	Init:   0x0000,
	RefIn:  false,
	RefOut: false,
	XorOut: 0x0000,
	Check:  0x31C3,
	Name:   "CRC-16/SOUNDBOX",
}

var table = crc16.MakeTable(Params)

// Checksum returns the checksum of bs. The checksum of an empty input is 0.
func Checksum(bs []byte) uint16 {
	return crc16.Checksum(bs, table)
}
