package isobmff

// Ftyp is the File Type Box: the brands a conforming reader uses to decide
// how to interpret the rest of the file. Always present exactly once at
// the top level.
type Ftyp struct {
	MajorBrand       BoxType
	MinorVersion     BoxType
	CompatibleBrands []BoxType
}

// ReadFtyp parses an ftyp box body (body already scoped to the box's
// bounds by the caller).
func ReadFtyp(body *Reader) (Ftyp, error) {
	major, err := ReadTag(body)
	if err != nil {
		return Ftyp{}, err
	}
	minor, err := ReadTag(body)
	if err != nil {
		return Ftyp{}, err
	}
	compatible, err := ReadList(body, ReadTag)
	if err != nil {
		return Ftyp{}, err
	}
	return Ftyp{
		MajorBrand:       major,
		MinorVersion:     minor,
		CompatibleBrands: compatible,
	}, nil
}
