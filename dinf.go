package isobmff

// DataEntryUrl is a "url " data entry: the box's FullBoxHeader flags carry
// a self-contained bit (0x000001) meaning the media data is in this same
// file, in which case Location is empty.
type DataEntryUrl struct {
	Flags    uint32
	Location string
}

// SelfContained reports whether the referenced media is within this file.
func (d DataEntryUrl) SelfContained() bool { return d.Flags&0x000001 != 0 }

func readDataEntryUrl(body *Reader) (DataEntryUrl, error) {
	fb, err := ReadFullBoxHeader(body)
	if err != nil {
		return DataEntryUrl{}, err
	}
	loc, err := ReadRemainingString(body)
	if err != nil {
		return DataEntryUrl{}, err
	}
	return DataEntryUrl{Flags: fb.Flags, Location: loc}, nil
}

// Dref is the Data Reference Box: one entry per place sample data may be
// found. This repo decodes "url " entries only; entries of any other type
// are skipped and not recorded, since almost every real file uses a single
// self-contained "url " entry.
type Dref struct {
	Urls []DataEntryUrl
}

// ReadDref parses a dref box body.
func ReadDref(body *Reader) (Dref, error) {
	if _, err := ReadFullBoxHeader(body); err != nil {
		return Dref{}, err
	}
	if _, err := ReadU32(body); err != nil { // entry_count
		return Dref{}, err
	}
	var d Dref
	err := walkChildren(body, func(hdr BoxHeader, child *Reader) error {
		if hdr.Tag == TypeUrl {
			u, err := readDataEntryUrl(child)
			if err != nil {
				return err
			}
			d.Urls = append(d.Urls, u)
		}
		return nil
	})
	return d, err
}

// Dinf is the Data Information Box: wraps the Dref. Exactly one per Minf.
type Dinf struct {
	Dref ExactlyOne[Dref]
}

// ReadDinf parses a dinf box body.
func ReadDinf(body *Reader) (Dinf, error) {
	var d Dinf
	err := walkChildren(body, func(hdr BoxHeader, child *Reader) error {
		if hdr.Tag == TypeDref {
			dref, err := ReadDref(child)
			if err != nil {
				return err
			}
			return d.Dref.Set(dref)
		}
		return nil
	})
	return d, err
}
