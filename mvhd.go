package isobmff

// Mvhd is the Movie Header Box: movie-wide timescale, duration and the
// next available track ID. Exactly one per Moov.
type Mvhd struct {
	Version     uint8
	Timescale   uint32
	Duration    uint32
	Rate        uint32 // 16.16 fixed point, 0x00010000 is normal playback
	Volume      uint16 // 8.8 fixed point, 0x0100 is full volume
	NextTrackID uint32
}

// RateString renders Rate as a decimal playback-speed multiplier, e.g. "1.0000".
func (m Mvhd) RateString() string { return fixedPointString(m.Rate) }

// ReadMvhd parses an mvhd box body. All fields are fixed-width regardless
// of version.
func ReadMvhd(body *Reader) (Mvhd, error) {
	fb, err := ReadFullBoxHeader(body)
	if err != nil {
		return Mvhd{}, err
	}
	m := Mvhd{Version: fb.Version}

	if _, err := ReadFixed(body, 8); err != nil { // ctime(4)+mtime(4)
		return Mvhd{}, err
	}
	if m.Timescale, err = ReadU32(body); err != nil {
		return Mvhd{}, err
	}
	if m.Duration, err = ReadU32(body); err != nil {
		return Mvhd{}, err
	}

	if m.Rate, err = ReadU32(body); err != nil {
		return Mvhd{}, err
	}
	vol, err := ReadU16(body)
	if err != nil {
		return Mvhd{}, err
	}
	m.Volume = vol

	// reserved(2)+reserved(8)+matrix(36)+predefined(24)
	if _, err := ReadFixed(body, 2+8+36+24); err != nil {
		return Mvhd{}, err
	}
	if m.NextTrackID, err = ReadU32(body); err != nil {
		return Mvhd{}, err
	}
	return m, nil
}
