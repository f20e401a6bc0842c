package isobmff

// Tkhd is the Track Header Box: per-track ID, duration and presentation
// dimensions. Exactly one per Trak.
type Tkhd struct {
	Version  uint8
	Flags    uint32
	TrackID  uint32
	Duration uint32
	Width    uint32 // 16.16 fixed point
	Height   uint32 // 16.16 fixed point
}

// ReadTkhd parses a tkhd box body. All fields are fixed-width regardless
// of version.
func ReadTkhd(body *Reader) (Tkhd, error) {
	fb, err := ReadFullBoxHeader(body)
	if err != nil {
		return Tkhd{}, err
	}
	t := Tkhd{Version: fb.Version, Flags: fb.Flags}

	if _, err := ReadFixed(body, 8); err != nil { // ctime(4)+mtime(4)
		return Tkhd{}, err
	}
	if t.TrackID, err = ReadU32(body); err != nil {
		return Tkhd{}, err
	}
	if _, err := ReadFixed(body, 4); err != nil { // reserved
		return Tkhd{}, err
	}
	if t.Duration, err = ReadU32(body); err != nil {
		return Tkhd{}, err
	}

	// reserved(8)+layer(2)+altGroup(2)+volume(2)+reserved(2)+matrix(36)
	if _, err := ReadFixed(body, 8+2+2+2+2+36); err != nil {
		return Tkhd{}, err
	}
	if t.Width, err = ReadU32(body); err != nil {
		return Tkhd{}, err
	}
	if t.Height, err = ReadU32(body); err != nil {
		return Tkhd{}, err
	}
	return t, nil
}
