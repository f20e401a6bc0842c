package isobmff

// StscEntry describes the samples-per-chunk run starting at FirstChunk
// (1-based), until the next entry's FirstChunk or the end of the track.
type StscEntry struct {
	FirstChunk          uint32
	SamplesPerChunk     uint32
	SampleDescriptionID uint32
}

func readStscEntry(body *Reader) (StscEntry, error) {
	first, err := ReadU32(body)
	if err != nil {
		return StscEntry{}, err
	}
	perChunk, err := ReadU32(body)
	if err != nil {
		return StscEntry{}, err
	}
	descID, err := ReadU32(body)
	if err != nil {
		return StscEntry{}, err
	}
	return StscEntry{FirstChunk: first, SamplesPerChunk: perChunk, SampleDescriptionID: descID}, nil
}

// Stsc is the Sample-to-Chunk Box. Exactly one per Stbl.
type Stsc struct {
	Entries []StscEntry
}

// ReadStsc parses an stsc box body.
func ReadStsc(body *Reader) (Stsc, error) {
	if _, err := ReadFullBoxHeader(body); err != nil {
		return Stsc{}, err
	}
	if _, err := ReadU32(body); err != nil {
		return Stsc{}, err
	}
	entries, err := ReadList(body, readStscEntry)
	if err != nil {
		return Stsc{}, err
	}
	return Stsc{Entries: entries}, nil
}
