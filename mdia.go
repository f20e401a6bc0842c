package isobmff

// Mdia is the Media Box: a track's media-specific timing, handler and
// sample table. Exactly one per Trak.
type Mdia struct {
	Mdhd ExactlyOne[Mdhd]
	Hdlr ExactlyOne[Hdlr]
	Minf ExactlyOne[Minf]
}

// ReadMdia parses an mdia box body.
func ReadMdia(body *Reader) (Mdia, error) {
	var m Mdia
	err := walkChildren(body, func(hdr BoxHeader, child *Reader) error {
		switch hdr.Tag {
		case TypeMdhd:
			v, err := ReadMdhd(child)
			if err != nil {
				return err
			}
			return m.Mdhd.Set(v)
		case TypeHdlr:
			v, err := ReadHdlr(child)
			if err != nil {
				return err
			}
			return m.Hdlr.Set(v)
		case TypeMinf:
			v, err := ReadMinf(child)
			if err != nil {
				return err
			}
			return m.Minf.Set(v)
		}
		return nil
	})
	return m, err
}
