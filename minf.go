package isobmff

// Minf is the Media Information Box. Exactly one per Mdia. Vmhd and Smhd
// are mutually exclusive in practice (video vs. audio tracks) but both are
// modeled as optional rather than an enforced choice, since a tolerant
// reader should not reject a track whose media header box this repo
// doesn't otherwise recognize.
type Minf struct {
	Vmhd Optional[Vmhd]
	Smhd Optional[Smhd]
	Dinf ExactlyOne[Dinf]
	Stbl ExactlyOne[Stbl]
}

// ReadMinf parses a minf box body.
func ReadMinf(body *Reader) (Minf, error) {
	var m Minf
	err := walkChildren(body, func(hdr BoxHeader, child *Reader) error {
		switch hdr.Tag {
		case TypeVmhd:
			v, err := ReadVmhd(child)
			if err != nil {
				return err
			}
			m.Vmhd.Set(v)
		case TypeSmhd:
			v, err := ReadSmhd(child)
			if err != nil {
				return err
			}
			m.Smhd.Set(v)
		case TypeDinf:
			v, err := ReadDinf(child)
			if err != nil {
				return err
			}
			return m.Dinf.Set(v)
		case TypeStbl:
			v, err := ReadStbl(child)
			if err != nil {
				return err
			}
			return m.Stbl.Set(v)
		}
		return nil
	})
	return m, err
}
