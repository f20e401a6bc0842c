package isobmff

import "strconv"

// DecodeESDSCodec extracts the MIME codec string from an already-read esds
// payload, by walking the MPEG-4 descriptor chain to the OTI (Object Type
// Indication) byte and, when present, the audio object type nested in the
// DecoderSpecificInfo descriptor. Returns e.g. "40.2" for AAC-LC, or "" if
// the chain is truncated or doesn't start with an ES_Descriptor.
func DecodeESDSCodec(data []byte) string {
	if len(data) < 2 || data[0] != 0x03 { // ES_Descriptor tag
		return ""
	}
	ptr, end := 1, len(data)

	ptr = skipDescriptorLength(data, ptr, end)
	if ptr < 0 || ptr+3 > end {
		return ""
	}

	flags := data[ptr+2] // ES_ID(2) + stream dependency flags(1)
	ptr += 3

	if flags&0x80 != 0 { // streamDependenceFlag
		ptr += 2
	}
	if flags&0x40 != 0 { // URL_Flag
		if ptr >= end {
			return ""
		}
		urlLen := int(data[ptr])
		ptr += 1 + urlLen
	}
	if flags&0x20 != 0 { // OCRstreamFlag
		ptr += 2
	}
	if ptr >= end || data[ptr] != 0x04 { // DecoderConfigDescriptor tag
		return ""
	}
	ptr++

	ptr = skipDescriptorLength(data, ptr, end)
	if ptr < 0 || ptr+13 > end {
		return ""
	}

	oti := data[ptr]
	if oti == 0 {
		return ""
	}
	otiStr := hexByte(oti)

	// OTI(1)+streamType(1)+bufferSizeDB(3)+maxBitrate(4)+avgBitrate(4) = 13
	ptr += 13
	if ptr >= end || data[ptr] != 0x05 { // DecoderSpecificInfo tag
		return otiStr
	}
	ptr++

	ptr = skipDescriptorLength(data, ptr, end)
	if ptr < 0 || ptr >= end {
		return otiStr
	}

	audioObjectType := (data[ptr] & 0xf8) >> 3
	if audioObjectType == 0 {
		return otiStr
	}
	return otiStr + "." + strconv.Itoa(int(audioObjectType))
}

// hexByte formats a byte as lowercase hex, a single digit when it fits.
func hexByte(b byte) string {
	if b < 16 {
		return string(hexDigit(b))
	}
	return string([]byte{hexDigit(b >> 4), hexDigit(b & 0x0f)})
}

func hexDigit(b byte) byte {
	if b < 10 {
		return '0' + b
	}
	return 'a' + (b - 10)
}

// skipDescriptorLength skips the variable-length MPEG-4 descriptor length
// field (continuation bit in the top bit of each byte), returning the new
// position or -1 if the chain runs out before a terminating byte.
func skipDescriptorLength(data []byte, ptr, end int) int {
	for ptr < end {
		b := data[ptr]
		ptr++
		if b&0x80 == 0 {
			return ptr
		}
	}
	return -1
}
