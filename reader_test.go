package isobmff

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderReadExact(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	r := NewReader(bytes.NewReader(data), int64(len(data)))

	var buf [2]byte
	require.NoError(t, r.ReadExact(buf[:]))
	require.Equal(t, []byte{0x01, 0x02}, buf[:])

	require.NoError(t, r.ReadExact(buf[:]))
	require.Equal(t, []byte{0x03, 0x04}, buf[:])

	var one [1]byte
	err := r.ReadExact(one[:])
	require.True(t, IsOutOfBounds(err))
}

func TestReaderSetLimit(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	r := NewReader(bytes.NewReader(data), int64(len(data)))

	r.SetLimit(2)
	require.EqualValues(t, 2, r.Remain())

	var buf [2]byte
	require.NoError(t, r.ReadExact(buf[:]))
	require.EqualValues(t, 0, r.Remain())

	var one [1]byte
	require.True(t, IsOutOfBounds(r.ReadExact(one[:])))
}

func TestReaderCloneIsIndependent(t *testing.T) {
	data := []byte{0xaa, 0xbb, 0xcc, 0xdd}
	r := NewReader(bytes.NewReader(data), int64(len(data)))

	var first [1]byte
	require.NoError(t, r.ReadExact(first[:]))

	clone := r.Clone()
	var fromClone [2]byte
	require.NoError(t, clone.ReadExact(fromClone[:]))
	require.Equal(t, []byte{0xbb, 0xcc}, fromClone[:])

	// The parent's position is unaffected by the clone's reads.
	var fromParent [1]byte
	require.NoError(t, r.ReadExact(fromParent[:]))
	require.Equal(t, []byte{0xbb}, fromParent[:])
}

func TestReaderClearLimit(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	r := NewReader(bytes.NewReader(data), int64(len(data)))
	r.SetLimit(1)
	r.ClearLimit()
	buf := make([]byte, 3)
	require.NoError(t, r.ReadExact(buf))
}
