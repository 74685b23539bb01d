package lbytes

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBytesReader_ReadUInt32(t *testing.T) {
	reader := NewBytesReader(
		[]byte{
			3, 1, 4, 3,
			12, 34, 56, 78,
		},
	)

	resultInt1, err := reader.ReadUInt32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(50594051), resultInt1)

	resultInt2, err := reader.ReadUInt32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(1312301580), resultInt2)
}

func TestBytesReader_ReadUInt16(t *testing.T) {
	reader := NewBytesReader([]byte{0x34, 0x12, 0xFF})

	result, err := reader.ReadUInt16()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), result)

	_, err = reader.ReadUInt16()
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestBytesReader_ReadBytes(t *testing.T) {
	reader := NewBytesReader([]byte{1, 2, 3})

	bs, err := reader.ReadBytes(0)
	assert.NoError(t, err)
	assert.Empty(t, bs)

	bs, err = reader.ReadBytes(3)
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, bs)

	bs, err = reader.ReadBytes(0)
	assert.NoError(t, err)
	assert.Empty(t, bs)

	_, err = reader.ReadBytes(1)
	assert.True(t, errors.Is(err, io.EOF))
}
