package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeChunks(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, MakeChunks([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]int{{1, 2, 3}}, MakeChunks([]int{1, 2, 3}, 3))
	assert.Empty(t, MakeChunks([]byte{1, 2}, 32))
	assert.Empty(t, MakeChunks([]byte{}, 32))
}

func TestNearestDivisibleByM(t *testing.T) {
	expectedValues := map[int]int{
		0:  0,
		1:  16,
		3:  16,
		16: 16,
		17: 32,
		20: 32,
	}
	for n, expected := range expectedValues {
		assert.Equalf(t, expected, NearestDivisibleByM(n, 16), "n = %d", n)
	}
	assert.Equal(t, uint32(48), NearestDivisibleByM(uint32(33), uint32(16)))
	assert.Panics(t, func() { NearestDivisibleByM(1, 0) })
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF}, Repeat(3, byte(0xFF)))
	assert.Empty(t, Repeat(0, byte(0xFF)))
}

func TestShallowCopy(t *testing.T) {
	original := []byte{1, 2, 3}
	copied := ShallowCopy(original)
	copied[0] = 9
	assert.Equal(t, []byte{1, 2, 3}, original)
	assert.Equal(t, []byte{9, 2, 3}, copied)
}

func TestErrUnreachableCode(t *testing.T) {
	err := ErrUnreachableCode{Caller: "Somewhere"}
	assert.EqualError(t, err, "Somewhere: unreachable code")
}
