package isobmff

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildBox wraps a 4-byte tag and body into a well-formed box.
func buildBox(tag string, body []byte) []byte {
	size := 8 + len(body)
	out := make([]byte, 4, size)
	be.PutUint32(out, uint32(size))
	out = append(out, []byte(tag)...)
	out = append(out, body...)
	return out
}

// TestWalkChildrenSkipsUnknownBoxes mirrors the nested-box scenario of an
// opaque "data" box on either side of an ftyp box nested inside an
// unrecognized outer box: walkChildren must tolerate the data boxes and
// still surface the ftyp in between.
func TestWalkChildrenSkipsUnknownBoxes(t *testing.T) {
	data1 := bytes.Repeat([]byte{0xff}, 108)
	data2 := bytes.Repeat([]byte{0xfe}, 108)
	ftypBody := append(append([]byte("isom"), 0, 0, 0, 1), []byte("isom")...)

	outerBody := append(buildBox("da1 ", data1), buildBox("ftyp", ftypBody)...)
	outerBody = append(outerBody, buildBox("da2 ", data2)...)
	outer := buildBox("test", outerBody)

	r := NewReader(bytes.NewReader(outer), int64(len(outer)))

	var tags []string
	var ftypSeen bool
	err := walkChildren(r, func(hdr BoxHeader, body *Reader) error {
		require.Equal(t, TypeTest(), hdr.Tag)
		return walkChildren(body, func(childHdr BoxHeader, child *Reader) error {
			tags = append(tags, childHdr.Tag.String())
			if childHdr.Tag == TypeFtyp {
				ftypSeen = true
				ftyp, err := ReadFtyp(child)
				if err != nil {
					return err
				}
				require.Equal(t, "isom", ftyp.MajorBrand.String())
			}
			return nil
		})
	})
	require.NoError(t, err)
	require.True(t, ftypSeen)
	require.Equal(t, []string{"da1 ", "ftyp", "da2 "}, tags)
}

// TypeTest is the literal tag "test", used only by this test to name the
// unrecognized outer container box.
func TypeTest() BoxType {
	return BoxType{'t', 'e', 's', 't'}
}
