package isobmff

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadHdlrRoundTrip(t *testing.T) {
	var body []byte
	body = append(body, 0, 0, 0, 0)       // version+flags
	body = append(body, []byte("mhlr")...) // component_type
	body = append(body, []byte("vide")...) // component_subtype
	body = append(body, 0, 0, 0, 0)        // component_flags
	body = append(body, 0, 0, 0, 0)        // component_flags_mask
	body = append(body, []byte("Video Handler")...)
	body = append(body, 0) // NUL terminator

	r := NewReader(bytes.NewReader(body), int64(len(body)))
	r.SetLimit(int64(len(body)))

	h, err := ReadHdlr(r)
	require.NoError(t, err)
	require.Equal(t, "mhlr", h.HandlerType.String())
	require.Equal(t, "vide", h.HandlerSubtype.String())
	require.Equal(t, "Video Handler", h.Name)
}
