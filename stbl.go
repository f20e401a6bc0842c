package isobmff

// Stbl is the Sample Table Box: everything needed to locate and decode
// a track's samples. Exactly one per Minf. The chunk offset table comes
// from Stco or Co64, each optional here; BuildSampleTable prefers Stco when
// both are present and fails when neither is.
type Stbl struct {
	Stsd ExactlyOne[Stsd]
	Stts ExactlyOne[Stts]
	Stsc ExactlyOne[Stsc]
	Stsz ExactlyOne[Stsz]
	Stco Optional[Stco]
	Co64 Optional[Co64]
}

// ReadStbl parses an stbl box body.
func ReadStbl(body *Reader) (Stbl, error) {
	var s Stbl
	err := walkChildren(body, func(hdr BoxHeader, child *Reader) error {
		switch hdr.Tag {
		case TypeStsd:
			v, err := ReadStsd(child)
			if err != nil {
				return err
			}
			return s.Stsd.Set(v)
		case TypeStts:
			v, err := ReadStts(child)
			if err != nil {
				return err
			}
			return s.Stts.Set(v)
		case TypeStsc:
			v, err := ReadStsc(child)
			if err != nil {
				return err
			}
			return s.Stsc.Set(v)
		case TypeStsz:
			v, err := ReadStsz(child)
			if err != nil {
				return err
			}
			return s.Stsz.Set(v)
		case TypeStco:
			v, err := ReadStco(child)
			if err != nil {
				return err
			}
			s.Stco.Set(v)
		case TypeCo64:
			v, err := ReadCo64(child)
			if err != nil {
				return err
			}
			s.Co64.Set(v)
		}
		return nil
	})
	return s, err
}
