package isobmff

// Udta is the User Data Box: an arbitrary bag of metadata children this
// repo does not decode further. Its raw bytes are kept so a caller that
// understands a given child (e.g. a "©nam" tag) can parse them itself.
type Udta struct {
	Raw []byte
}

// ReadUdta keeps a udta box body as opaque data.
func ReadUdta(body *Reader) (Udta, error) {
	raw, err := ReadFixed(body, int(body.Remain()))
	if err != nil {
		return Udta{}, err
	}
	return Udta{Raw: raw}, nil
}
