package isobmff

// ElstEntry is a single edit list segment. Parsed as data only: this repo
// does not compose edit lists into a presentation timeline (see Non-goals).
type ElstEntry struct {
	SegmentDuration uint32
	MediaTime       int32
	MediaRateInt    int16
	MediaRateFrac   int16
}

// readElstEntry parses track_duration:u32, media_time:u32, media_rate:u32
// (the latter split into its integer and fractional 16-bit halves). Fields
// are fixed-width regardless of version.
func readElstEntry(body *Reader) (ElstEntry, error) {
	var e ElstEntry
	dur, err := ReadU32(body)
	if err != nil {
		return ElstEntry{}, err
	}
	mt, err := ReadU32(body)
	if err != nil {
		return ElstEntry{}, err
	}
	e.SegmentDuration = dur
	e.MediaTime = int32(mt)

	rateInt, err := ReadU16(body)
	if err != nil {
		return ElstEntry{}, err
	}
	rateFrac, err := ReadU16(body)
	if err != nil {
		return ElstEntry{}, err
	}
	e.MediaRateInt = int16(rateInt)
	e.MediaRateFrac = int16(rateFrac)
	return e, nil
}

// Elst is the Edit List Box.
type Elst struct {
	Entries []ElstEntry
}

// ReadElst parses an elst box body.
func ReadElst(body *Reader) (Elst, error) {
	if _, err := ReadFullBoxHeader(body); err != nil {
		return Elst{}, err
	}
	if _, err := ReadU32(body); err != nil { // entry_count; ReadList terminates on limit instead
		return Elst{}, err
	}
	entries, err := ReadList(body, readElstEntry)
	if err != nil {
		return Elst{}, err
	}
	return Elst{Entries: entries}, nil
}

// Edts is the Edit Box: an optional container wrapping an Elst.
type Edts struct {
	Elst Optional[Elst]
}

// ReadEdts parses an edts box body.
func ReadEdts(body *Reader) (Edts, error) {
	var e Edts
	err := walkChildren(body, func(hdr BoxHeader, child *Reader) error {
		if hdr.Tag == TypeElst {
			elst, err := ReadElst(child)
			if err != nil {
				return err
			}
			e.Elst.Set(elst)
		}
		return nil
	})
	return e, err
}
