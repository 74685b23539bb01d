package sentry

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/soundbox-flash/sbx/lbytes"
)

func Decode(bs []byte) (*Entry, error) {
	if len(bs) != DefaultEntrySize {
		err := fmt.Errorf("sentry.Decode error: expected %d bytes, got %d", DefaultEntrySize, len(bs))
		return nil, err
	}
	// reading from an exactly sized buffer cannot fail,
	// so the errors of the reader are only checked once at the end
	reader := lbytes.NewBytesReader(bs)
	entry := Entry{}
	entry.HeaderChecksum, _ = reader.ReadUInt16()
	entry.PayloadChecksum, _ = reader.ReadUInt16()
	entry.Offset, _ = reader.ReadUInt32()
	entry.Size, _ = reader.ReadUInt32()
	entry.Tag, _ = reader.ReadByte()
	entry.Kind = KindFromTag(entry.Tag)
	marker, _ := reader.ReadBytes(len(entry.Marker))
	copy(entry.Marker[:], marker)
	nameField, err := reader.ReadBytes(NameFieldSize)
	if err != nil {
		err := errors.Wrap(err, "sentry.Decode error: read name field")
		return nil, err
	}
	copy(entry.NameField[:], nameField)

	entry.Name, err = DecodeName(nameField)
	if err != nil {
		err := errors.Wrap(err, "sentry.Decode error")
		return nil, err
	}

	return &entry, nil
}
