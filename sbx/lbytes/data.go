package lbytes

import (
	"bytes"
)

type (
	Reader struct {
		bytes.Reader
	}
)
