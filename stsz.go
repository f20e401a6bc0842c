package isobmff

// Stsz is the Sample Size Box. When SampleSize is nonzero every sample
// shares that size and EntrySizes is empty; otherwise EntrySizes holds one
// size per sample. Exactly one per Stbl.
type Stsz struct {
	SampleSize  uint32
	SampleCount uint32
	EntrySizes  []uint32
}

// ReadStsz parses an stsz box body.
func ReadStsz(body *Reader) (Stsz, error) {
	if _, err := ReadFullBoxHeader(body); err != nil {
		return Stsz{}, err
	}
	sampleSize, err := ReadU32(body)
	if err != nil {
		return Stsz{}, err
	}
	sampleCount, err := ReadU32(body)
	if err != nil {
		return Stsz{}, err
	}
	s := Stsz{SampleSize: sampleSize, SampleCount: sampleCount}
	if sampleSize == 0 {
		entries, err := ReadList(body, ReadU32)
		if err != nil {
			return Stsz{}, err
		}
		s.EntrySizes = entries
	}
	return s, nil
}

// SizeOf returns the size of the i'th sample (0-based).
func (s Stsz) SizeOf(i int) uint32 {
	if s.SampleSize != 0 {
		return s.SampleSize
	}
	if i < 0 || i >= len(s.EntrySizes) {
		return 0
	}
	return s.EntrySizes[i]
}
