package sbx

import (
	"github.com/thanhnguyen2187/soundbox-flash/sbx/sentry"
)

type (
	File struct {
		Name    string `json:"name" yaml:"name"`
		Content []byte `json:"content" yaml:"content"`
	}
	// Result is an entry together with the outcome of verifying its checksums.
	Result struct {
		Index             int          `json:"index" yaml:"index"`
		Entry             sentry.Entry `json:"entry" yaml:"entry"`
		HeaderOK          bool         `json:"header_ok" yaml:"header_ok"`
		PayloadOK         bool         `json:"payload_ok" yaml:"payload_ok"`
		CalculatedHeader  uint16       `json:"calculated_header" yaml:"calculated_header"`
		CalculatedPayload uint16       `json:"calculated_payload" yaml:"calculated_payload"`
	}
	// Archive is a fully verified archive. Data is the buffer the entries point into.
	Archive struct {
		Entries []Result
		Data    []byte
	}
	ChecksumKind string
)

const (
	ChecksumKindHeader  = ChecksumKind("header")
	ChecksumKindPayload = ChecksumKind("payload")

	// PayloadAlignment is the size every file payload is padded to a multiple of.
	PayloadAlignment = 16
	// DirectoryOffset points right after the slot of the directory entry itself.
	DirectoryOffset = sentry.DefaultEntrySize
)
