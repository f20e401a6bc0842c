package isobmff

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExactlyOneRejectsSecondSet(t *testing.T) {
	var o ExactlyOne[int]
	require.NoError(t, o.Set(1))
	err := o.Set(2)
	require.True(t, IsAlreadyPresent(err))

	v, err := o.Get("field")
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestExactlyOneNotFound(t *testing.T) {
	var o ExactlyOne[int]
	_, err := o.Get("mvhd")
	require.True(t, IsNotFound(err))
}

func TestOptionalLastWins(t *testing.T) {
	var o Optional[int]
	_, ok := o.Get()
	require.False(t, ok)

	o.Set(1)
	o.Set(2)
	v, ok := o.Get()
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestRepeatedPreservesOrder(t *testing.T) {
	var r Repeated[int]
	r.Push(1)
	r.Push(2)
	r.Push(3)
	require.Equal(t, []int{1, 2, 3}, r.All())
	require.Equal(t, 3, r.Len())
}

func TestReadListStopsAtLimit(t *testing.T) {
	// 10 bytes under a uint32 decoder: 2 full elements, 2 leftover bytes
	// that can't form a third — ReadList must stop cleanly, not error.
	data := []byte{0, 0, 0, 1, 0, 0, 0, 2, 0xff, 0xff}
	r := NewReader(bytes.NewReader(data), int64(len(data)))

	values, err := ReadList(r, ReadU32)
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 2}, values)
}
