package isobmff

// Trak is the Track Box: one per track in the movie. Repeated under Moov.
type Trak struct {
	Tkhd ExactlyOne[Tkhd]
	Edts Optional[Edts]
	Mdia ExactlyOne[Mdia]
}

// ReadTrak parses a trak box body.
func ReadTrak(body *Reader) (Trak, error) {
	var t Trak
	err := walkChildren(body, func(hdr BoxHeader, child *Reader) error {
		switch hdr.Tag {
		case TypeTkhd:
			v, err := ReadTkhd(child)
			if err != nil {
				return err
			}
			return t.Tkhd.Set(v)
		case TypeEdts:
			v, err := ReadEdts(child)
			if err != nil {
				return err
			}
			t.Edts.Set(v)
		case TypeMdia:
			v, err := ReadMdia(child)
			if err != nil {
				return err
			}
			return t.Mdia.Set(v)
		}
		return nil
	})
	return t, err
}
