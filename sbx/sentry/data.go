package sentry

type (
	Kind  string
	Entry struct {
		HeaderChecksum  uint16  `json:"header_checksum" yaml:"header_checksum"`
		PayloadChecksum uint16  `json:"payload_checksum" yaml:"payload_checksum"`
		Offset          uint32  `json:"offset" yaml:"offset"`
		Size            uint32  `json:"size" yaml:"size"`
		Tag             byte    `json:"tag" yaml:"tag"`
		Kind            Kind    `json:"kind" yaml:"kind"`
		Marker          [3]byte `json:"marker" yaml:"marker"`
		Name            string  `json:"name" yaml:"name"`

		// NameField keeps the 16 name bytes exactly as stored, including whatever
		// follows the NUL terminator, since they are covered by the header checksum.
		NameField [NameFieldSize]byte `json:"-" yaml:"-"`
	}
)

const (
	DefaultEntrySize = 32
	// HeaderDomainSize is the number of bytes after the header checksum.
	HeaderDomainSize = DefaultEntrySize - 2
	NameFieldSize    = 16
	// MaxNameLength leaves room for the NUL terminator inside the name field.
	MaxNameLength    = NameFieldSize - 1

	TagFile      = byte(0x02)
	TagDirectory = byte(0x03)

	KindFile      = Kind("file")
	KindDirectory = Kind("directory")
	KindUnknown   = Kind("unknown")

	NameTerminator = byte(0x00)
	FillByte       = byte(0xFF)
)

var (
	// MarkerLast marks the final entry of the directory table.
	MarkerLast = [3]byte{0xFF, 0x01, 0x00}
	MarkerMore = [3]byte{0xFF, 0x00, 0x00}
)

func KindFromTag(tag byte) Kind {
	switch tag {
	case TagFile:
		return KindFile
	case TagDirectory:
		return KindDirectory
	default:
		return KindUnknown
	}
}

func (r Entry) IsLast() bool {
	return r.Marker == MarkerLast
}
