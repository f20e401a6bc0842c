package isobmff

// AvcC is the AVC Configuration Box nested under an Avc1 sample entry.
type AvcC struct {
	Codec string // MIME codec parameter, e.g. "64001f"
	Raw   []byte
}

func readAvcC(body *Reader) (AvcC, error) {
	raw, err := ReadFixed(body, int(body.Remain()))
	if err != nil {
		return AvcC{}, err
	}
	return AvcC{Codec: DecodeAVCCCodec(raw), Raw: raw}, nil
}

// Esds is the Elementary Stream Descriptor Box nested under an Mp4a sample
// entry.
type Esds struct {
	Codec string // MIME codec parameter, e.g. "40.2"
	Raw   []byte
}

func readEsds(body *Reader) (Esds, error) {
	if _, err := ReadFullBoxHeader(body); err != nil {
		return Esds{}, err
	}
	raw, err := ReadFixed(body, int(body.Remain()))
	if err != nil {
		return Esds{}, err
	}
	return Esds{Codec: DecodeESDSCodec(raw), Raw: raw}, nil
}

// Avc1SampleEntry is the "avc1" visual sample entry: H.264 video.
type Avc1SampleEntry struct {
	DataReferenceIndex uint16
	Width, Height      uint16
	AvcC               Optional[AvcC]
}

func readAvc1(body *Reader) (Avc1SampleEntry, error) {
	if _, err := ReadFixed(body, 6); err != nil { // reserved
		return Avc1SampleEntry{}, err
	}
	dataRefIdx, err := ReadU16(body)
	if err != nil {
		return Avc1SampleEntry{}, err
	}
	if _, err := ReadFixed(body, 16); err != nil { // pre_defined/reserved
		return Avc1SampleEntry{}, err
	}
	width, err := ReadU16(body)
	if err != nil {
		return Avc1SampleEntry{}, err
	}
	height, err := ReadU16(body)
	if err != nil {
		return Avc1SampleEntry{}, err
	}
	// hres(4)+vres(4)+reserved(4)+frame_count(2)+compressorname(32)+depth(2)+pre_defined(2)
	if _, err := ReadFixed(body, 4+4+4+2+32+2+2); err != nil {
		return Avc1SampleEntry{}, err
	}

	e := Avc1SampleEntry{DataReferenceIndex: dataRefIdx, Width: width, Height: height}
	err = walkChildren(body, func(hdr BoxHeader, child *Reader) error {
		if hdr.Tag == TypeAvcC {
			avcC, err := readAvcC(child)
			if err != nil {
				return err
			}
			e.AvcC.Set(avcC)
		}
		return nil
	})
	return e, err
}

// Mp4aSampleEntry is the "mp4a" audio sample entry: MPEG-4/AAC audio.
type Mp4aSampleEntry struct {
	DataReferenceIndex uint16
	ChannelCount       uint16
	SampleSize         uint16
	SampleRate         uint32 // 16.16 fixed point
	Esds               Optional[Esds]
}

func readMp4a(body *Reader) (Mp4aSampleEntry, error) {
	if _, err := ReadFixed(body, 6); err != nil { // reserved
		return Mp4aSampleEntry{}, err
	}
	dataRefIdx, err := ReadU16(body)
	if err != nil {
		return Mp4aSampleEntry{}, err
	}
	if _, err := ReadFixed(body, 8); err != nil { // reserved[2]
		return Mp4aSampleEntry{}, err
	}
	channelCount, err := ReadU16(body)
	if err != nil {
		return Mp4aSampleEntry{}, err
	}
	sampleSize, err := ReadU16(body)
	if err != nil {
		return Mp4aSampleEntry{}, err
	}
	if _, err := ReadFixed(body, 4); err != nil { // pre_defined/reserved
		return Mp4aSampleEntry{}, err
	}
	sampleRate, err := ReadU32(body)
	if err != nil {
		return Mp4aSampleEntry{}, err
	}

	e := Mp4aSampleEntry{
		DataReferenceIndex: dataRefIdx,
		ChannelCount:       channelCount,
		SampleSize:         sampleSize,
		SampleRate:         sampleRate,
	}
	err = walkChildren(body, func(hdr BoxHeader, child *Reader) error {
		if hdr.Tag == TypeEsds {
			esds, err := readEsds(child)
			if err != nil {
				return err
			}
			e.Esds.Set(esds)
		}
		return nil
	})
	return e, err
}

// OpaqueSampleEntry is any sample entry this repo does not decode a
// typed shape for (e.g. "Hap1"): its data reference index is exposed, the
// rest of the body is kept raw for callers that understand the format.
type OpaqueSampleEntry struct {
	Format             BoxType
	DataReferenceIndex uint16
	Raw                []byte
}

func readOpaqueSampleEntry(format BoxType) func(*Reader) (OpaqueSampleEntry, error) {
	return func(body *Reader) (OpaqueSampleEntry, error) {
		if _, err := ReadFixed(body, 6); err != nil {
			return OpaqueSampleEntry{}, err
		}
		dataRefIdx, err := ReadU16(body)
		if err != nil {
			return OpaqueSampleEntry{}, err
		}
		raw, err := ReadFixed(body, int(body.Remain()))
		if err != nil {
			return OpaqueSampleEntry{}, err
		}
		return OpaqueSampleEntry{Format: format, DataReferenceIndex: dataRefIdx, Raw: raw}, nil
	}
}

// SampleDescription is one entry of an Stsd: exactly one of Avc1, Mp4a or
// Opaque is populated, matching Format.
type SampleDescription struct {
	Format BoxType
	Avc1   *Avc1SampleEntry
	Mp4a   *Mp4aSampleEntry
	Opaque *OpaqueSampleEntry
}

func readSampleDescription(body *Reader) (SampleDescription, error) {
	hdr, err := readBoxHeader(body)
	if err != nil {
		return SampleDescription{}, err
	}
	entryBody := body.Clone()
	bodySize := hdr.BodySize()
	entryBody.SetLimit(bodySize)

	var desc SampleDescription
	desc.Format = hdr.Tag

	switch hdr.Tag {
	case TypeAvc1:
		e, err := readAvc1(entryBody)
		if err != nil {
			return SampleDescription{}, err
		}
		desc.Avc1 = &e
	case TypeMp4a:
		e, err := readMp4a(entryBody)
		if err != nil {
			return SampleDescription{}, err
		}
		desc.Mp4a = &e
	default:
		e, err := readOpaqueSampleEntry(hdr.Tag)(entryBody)
		if err != nil {
			return SampleDescription{}, err
		}
		desc.Opaque = &e
	}

	if err := body.SeekFromCurrent(bodySize); err != nil {
		return SampleDescription{}, err
	}
	return desc, nil
}

// Stsd is the Sample Description Box: one entry per distinct sample
// format used by the track (almost always exactly one). Exactly one per
// Stbl.
type Stsd struct {
	Entries []SampleDescription
}

// ReadStsd parses an stsd box body.
func ReadStsd(body *Reader) (Stsd, error) {
	if _, err := ReadFullBoxHeader(body); err != nil {
		return Stsd{}, err
	}
	if _, err := ReadU32(body); err != nil { // entry_count
		return Stsd{}, err
	}
	entries, err := ReadList(body, readSampleDescription)
	if err != nil {
		return Stsd{}, err
	}
	return Stsd{Entries: entries}, nil
}
