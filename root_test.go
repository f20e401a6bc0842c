package isobmff

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildMvhdBody returns a well-formed version-0 mvhd box.
func buildMvhdBody(timescale, duration, nextTrackID uint32) []byte {
	var b []byte
	b = append(b, 0, 0, 0, 0) // version+flags
	b = append(b, 0, 0, 0, 0) // ctime
	b = append(b, 0, 0, 0, 0) // mtime
	var ts, dur, ntid [4]byte
	be.PutUint32(ts[:], timescale)
	be.PutUint32(dur[:], duration)
	be.PutUint32(ntid[:], nextTrackID)
	b = append(b, ts[:]...)
	b = append(b, dur[:]...)
	b = append(b, 0, 1, 0, 0) // rate
	b = append(b, 1, 0)      // volume
	b = append(b, make([]byte, 10+36+24)...)
	b = append(b, ntid[:]...)
	return b
}

func TestParseTopLevelDocument(t *testing.T) {
	ftyp := buildFtypBytes()
	moov := buildBox("moov", buildBox("mvhd", buildMvhdBody(1000, 5000, 2)))
	mdatPayload := bytes.Repeat([]byte{0x7a}, 16)
	mdat := buildBox("mdat", mdatPayload)

	var stream []byte
	stream = append(stream, ftyp...)
	stream = append(stream, moov...)
	stream = append(stream, mdat...)

	doc, err := Parse(bytes.NewReader(stream), int64(len(stream)))
	require.NoError(t, err)

	ftypOut, err := doc.Ftyp.Get("ftyp")
	require.NoError(t, err)
	require.Equal(t, "rust", ftypOut.MajorBrand.String())

	moovOut, err := doc.Moov.Get("moov")
	require.NoError(t, err)
	mvhdOut, err := moovOut.Mvhd.Get("mvhd")
	require.NoError(t, err)
	require.EqualValues(t, 1000, mvhdOut.Timescale)
	require.EqualValues(t, 5000, mvhdOut.Duration)
	require.EqualValues(t, 2, mvhdOut.NextTrackID)
	require.Equal(t, 0, moovOut.Traks.Len())

	require.Equal(t, 1, doc.Mdat.Len())
	m := doc.Mdat.All()[0]
	require.EqualValues(t, len(mdatPayload), m.Size)

	r := m.Reader()
	raw, err := ReadFixed(r, len(mdatPayload))
	require.NoError(t, err)
	require.Equal(t, mdatPayload, raw)
}
