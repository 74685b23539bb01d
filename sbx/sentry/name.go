package sentry

import (
	"bytes"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/soundbox-flash/sbx/lbytes"
)

var (
	ErrInvalidNameEncoding = errors.New("name is not valid UTF-8")
	ErrNameTooLong         = errors.New("name is too long")
	ErrEmptyName           = errors.New("name is empty")
)

// DecodeName returns the text before the first NUL of the name field,
// or the whole field when there is no NUL.
func DecodeName(field []byte) (string, error) {
	if index := bytes.IndexByte(field, NameTerminator); index >= 0 {
		field = field[:index]
	}
	if !utf8.Valid(field) {
		err := errors.Wrapf(ErrInvalidNameEncoding, `DecodeName error: bytes "% X"`, field)
		return "", err
	}
	return string(field), nil
}

func ValidateName(name string) error {
	switch {
	case len(name) == 0:
		return ErrEmptyName
	case !utf8.ValidString(name):
		return errors.Wrapf(ErrInvalidNameEncoding, `ValidateName error: name "%s"`, name)
	case bytes.IndexByte([]byte(name), NameTerminator) >= 0:
		return errors.Wrapf(ErrInvalidNameEncoding, `ValidateName error: name "%s" contains a NUL byte`, name)
	case len(name) > MaxNameLength:
		return errors.Wrapf(
			ErrNameTooLong, `ValidateName error: name "%s" has %d bytes, at most %d are allowed`,
			name, len(name), MaxNameLength,
		)
	}
	return nil
}

// EncodeName lays out the name as stored on flash: the UTF-8 bytes, one NUL,
// then 0xFF up to the end of the field.
func EncodeName(name string) [NameFieldSize]byte {
	bs := append([]byte(name), NameTerminator)
	bs = lbytes.PadRight(bs, NameFieldSize, FillByte)
	field := [NameFieldSize]byte{}
	copy(field[:], bs)
	return field
}
