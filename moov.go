package isobmff

// Moov is the Movie Box: the entire non-sample-data structure of the
// file. Exactly one per Document.
type Moov struct {
	Mvhd  ExactlyOne[Mvhd]
	Traks Repeated[Trak]
	Udta  Optional[Udta]
}

// ReadMoov parses a moov box body.
func ReadMoov(body *Reader) (Moov, error) {
	var m Moov
	err := walkChildren(body, func(hdr BoxHeader, child *Reader) error {
		switch hdr.Tag {
		case TypeMvhd:
			v, err := ReadMvhd(child)
			if err != nil {
				return err
			}
			return m.Mvhd.Set(v)
		case TypeTrak:
			v, err := ReadTrak(child)
			if err != nil {
				return err
			}
			m.Traks.Push(v)
		case TypeUdta:
			v, err := ReadUdta(child)
			if err != nil {
				return err
			}
			m.Udta.Set(v)
		}
		return nil
	})
	return m, err
}
