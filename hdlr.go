package isobmff

// Hdlr is the Handler Reference Box: declares the component type/subtype
// (the subtype is the track's media type, "vide"/"soun"/...) and a
// human-readable name. Exactly one per Mdia.
type Hdlr struct {
	HandlerType      BoxType
	HandlerSubtype   BoxType
	HandlerFlags     [4]byte
	HandlerFlagsMask [4]byte
	Name             string
}

// ReadHdlr parses an hdlr box body. component_type sits immediately after
// version/flags, with component_name starting at byte offset 20.
func ReadHdlr(body *Reader) (Hdlr, error) {
	if _, err := ReadFullBoxHeader(body); err != nil {
		return Hdlr{}, err
	}
	handlerType, err := ReadTag(body)
	if err != nil {
		return Hdlr{}, err
	}
	handlerSubtype, err := ReadTag(body)
	if err != nil {
		return Hdlr{}, err
	}
	var flags, flagsMask [4]byte
	flagsBuf, err := ReadFixed(body, 4)
	if err != nil {
		return Hdlr{}, err
	}
	copy(flags[:], flagsBuf)
	flagsMaskBuf, err := ReadFixed(body, 4)
	if err != nil {
		return Hdlr{}, err
	}
	copy(flagsMask[:], flagsMaskBuf)
	name, err := ReadRemainingString(body)
	if err != nil {
		return Hdlr{}, err
	}
	return Hdlr{
		HandlerType:      handlerType,
		HandlerSubtype:   handlerSubtype,
		HandlerFlags:     flags,
		HandlerFlagsMask: flagsMask,
		Name:             name,
	}, nil
}
