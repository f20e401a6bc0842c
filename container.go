package isobmff

// walkChildren reads sibling boxes from r (bounded by r's current limit),
// invoking fn once per box with the box's own bounded Reader. fn's Reader
// is independent of r: fn may read as little or as much of the body as it
// wants (unknown box types are simply never read), and walkChildren still
// advances r to the next sibling afterward.
//
// readBoxHeader rejects every size below 8 as invalid data, so neither the
// format's size==0 "box extends to the end of its region" convention nor
// the 64-bit largesize escape (size==1) is supported; the size==0 branch
// below is never reached.
func walkChildren(r *Reader, fn func(hdr BoxHeader, body *Reader) error) error {
	for r.Remain() > 0 {
		hdr, err := readBoxHeader(r)
		if err != nil {
			if IsOutOfBounds(err) {
				return nil
			}
			return err
		}

		bodySize := hdr.BodySize()
		if hdr.Size == 0 {
			bodySize = r.Remain()
		}
		if bodySize < 0 {
			return newInvalidDataError(hdr.Tag, hdr.Size)
		}

		body := r.Clone()
		body.SetLimit(bodySize)

		if err := fn(hdr, body); err != nil {
			return wrapBoxErr(hdr.Tag, err)
		}

		if err := r.SeekFromCurrent(bodySize); err != nil {
			return err
		}
	}
	return nil
}
