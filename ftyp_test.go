package isobmff

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildFtypBytes constructs a well-formed ftyp box: "rust"/"mp4r" major
// brand and minor version, with two compatible brands.
func buildFtypBytes() []byte {
	var body []byte
	body = append(body, []byte("rust")...) // major_brand
	body = append(body, []byte("mp4r")...) // minor_version, read back as a tag
	body = append(body, []byte("foo0")...) // compatible_brands[0]
	body = append(body, []byte("hoge")...) // compatible_brands[1]

	size := 8 + len(body)
	out := make([]byte, 0, size)
	var sizeBuf [4]byte
	be.PutUint32(sizeBuf[:], uint32(size))
	out = append(out, sizeBuf[:]...)
	out = append(out, []byte("ftyp")...)
	out = append(out, body...)
	return out
}

func TestReadFtypRoundTrip(t *testing.T) {
	data := buildFtypBytes()
	r := NewReader(bytes.NewReader(data), int64(len(data)))

	var ftyp Ftyp
	err := walkChildren(r, func(hdr BoxHeader, body *Reader) error {
		require.Equal(t, TypeFtyp, hdr.Tag)
		v, err := ReadFtyp(body)
		ftyp = v
		return err
	})
	require.NoError(t, err)

	require.Equal(t, "rust", ftyp.MajorBrand.String())
	require.Equal(t, "mp4r", ftyp.MinorVersion.String())
	require.Len(t, ftyp.CompatibleBrands, 2)
	require.Equal(t, "foo0", ftyp.CompatibleBrands[0].String())
	require.Equal(t, "hoge", ftyp.CompatibleBrands[1].String())
}

func TestInvalidDataOnUndersizedBox(t *testing.T) {
	// size field of 4 is smaller than the 8-byte header itself.
	data := []byte{0x00, 0x00, 0x00, 0x04, 'f', 't', 'y', 'p'}
	r := NewReader(bytes.NewReader(data), int64(len(data)))

	err := walkChildren(r, func(hdr BoxHeader, body *Reader) error {
		return nil
	})
	require.Error(t, err)
}
