package sentry

import (
	"github.com/thanhnguyen2187/soundbox-flash/sbx/lbytes"
	"github.com/thanhnguyen2187/soundbox-flash/sbx/scrc"
)

// EncodeHeaderDomain returns the 30 bytes covered by the header checksum.
func EncodeHeaderDomain(entry Entry) []byte {
	bs := make([]byte, 0, HeaderDomainSize)
	bs = append(bs, lbytes.EncodeValueUInt16(entry.PayloadChecksum)...)
	bs = append(bs, lbytes.EncodeValueUInt32(entry.Offset)...)
	bs = append(bs, lbytes.EncodeValueUInt32(entry.Size)...)
	bs = append(bs, entry.Tag)
	bs = append(bs, entry.Marker[:]...)
	bs = append(bs, entry.NameField[:]...)
	return bs
}

func Encode(entry Entry) []byte {
	bs := make([]byte, 0, DefaultEntrySize)
	bs = append(bs, lbytes.EncodeValueUInt16(entry.HeaderChecksum)...)
	bs = append(bs, EncodeHeaderDomain(entry)...)
	return bs
}

// Seal fills in the derived fields of entry (kind, name field, header checksum)
// from its name, tag and the other header fields.
func Seal(entry Entry) Entry {
	entry.Kind = KindFromTag(entry.Tag)
	entry.NameField = EncodeName(entry.Name)
	entry.HeaderChecksum = scrc.Checksum(EncodeHeaderDomain(entry))
	return entry
}
