// Package isobmff implements a parser for the ISO Base Media File Format
// (ISO-BMFF / QuickTime / MP4): a recursive, length-prefixed box tree is
// decoded into a strongly-typed tree, and sample tables are derived from it.
//
// Writing/muxing, fragmented-MP4 (moof/mfra) parsing, 64-bit largesize boxes,
// and edit-list-aware timeline composition are out of scope; see DESIGN.md.
package isobmff

import "encoding/json"

// BoxType is a 4-byte box type identifier, compared by exact byte equality.
type BoxType [4]byte

func (t BoxType) String() string {
	return string(t[:])
}

// MarshalJSON renders a BoxType as its 4-character string, e.g. "ftyp",
// rather than a JSON array of 4 byte values.
func (t BoxType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Known box types.
var (
	TypeFtyp = BoxType{'f', 't', 'y', 'p'}
	TypeMoov = BoxType{'m', 'o', 'o', 'v'}
	TypeMvhd = BoxType{'m', 'v', 'h', 'd'}
	TypeTrak = BoxType{'t', 'r', 'a', 'k'}
	TypeTkhd = BoxType{'t', 'k', 'h', 'd'}
	TypeEdts = BoxType{'e', 'd', 't', 's'}
	TypeElst = BoxType{'e', 'l', 's', 't'}
	TypeMdia = BoxType{'m', 'd', 'i', 'a'}
	TypeMdhd = BoxType{'m', 'd', 'h', 'd'}
	TypeHdlr = BoxType{'h', 'd', 'l', 'r'}
	TypeMinf = BoxType{'m', 'i', 'n', 'f'}
	TypeVmhd = BoxType{'v', 'm', 'h', 'd'}
	TypeSmhd = BoxType{'s', 'm', 'h', 'd'}
	TypeDinf = BoxType{'d', 'i', 'n', 'f'}
	TypeDref = BoxType{'d', 'r', 'e', 'f'}
	TypeUrl  = BoxType{'u', 'r', 'l', ' '}
	TypeStbl = BoxType{'s', 't', 'b', 'l'}
	TypeStsd = BoxType{'s', 't', 's', 'd'}
	TypeStts = BoxType{'s', 't', 't', 's'}
	TypeStsc = BoxType{'s', 't', 's', 'c'}
	TypeStsz = BoxType{'s', 't', 's', 'z'}
	TypeStco = BoxType{'s', 't', 'c', 'o'}
	TypeCo64 = BoxType{'c', 'o', '6', '4'}
	TypeUdta = BoxType{'u', 'd', 't', 'a'}
	TypeMdat = BoxType{'m', 'd', 'a', 't'}
	TypeFree = BoxType{'f', 'r', 'e', 'e'}
	TypeSkip = BoxType{'s', 'k', 'i', 'p'}
	TypeAvc1 = BoxType{'a', 'v', 'c', '1'}
	TypeAvcC = BoxType{'a', 'v', 'c', 'C'}
	TypeMp4a = BoxType{'m', 'p', '4', 'a'}
	TypeHap1 = BoxType{'H', 'a', 'p', '1'}
	TypeEsds = BoxType{'e', 's', 'd', 's'}
)

// IsFullBox returns true if the box type has version and flags fields
// ahead of its other attributes (the "full box" convention, see GLOSSARY).
func IsFullBox(t BoxType) bool {
	switch t {
	case TypeMvhd, TypeTkhd, TypeMdhd, TypeHdlr,
		TypeVmhd, TypeSmhd, TypeDref, TypeStsd,
		TypeStts, TypeStsc, TypeStsz, TypeStco,
		TypeCo64, TypeElst, TypeEsds:
		return true
	}
	return false
}

// BoxHeader is the 8-byte (size, tag) prefix common to every box.
// Invariant: Size >= 8. BodySize() = Size - 8.
type BoxHeader struct {
	Tag  BoxType
	Size uint32
}

// BodySize returns the number of body bytes following the header.
func (h BoxHeader) BodySize() int64 {
	return int64(h.Size) - 8
}

// readBoxHeader reads the 4-byte size followed by the 4-byte tag, in that
// stream order, and validates size >= 8. Extended (size==1) 64-bit
// largesize boxes are not supported; any size < 8 is InvalidData.
func readBoxHeader(r *Reader) (BoxHeader, error) {
	var sizeBuf [4]byte
	if err := r.ReadExact(sizeBuf[:]); err != nil {
		return BoxHeader{}, err
	}
	var tag BoxType
	if err := r.ReadExact(tag[:]); err != nil {
		return BoxHeader{}, err
	}
	size := be.Uint32(sizeBuf[:])
	if size < 8 {
		return BoxHeader{}, newInvalidDataError(tag, size)
	}
	return BoxHeader{Tag: tag, Size: size}, nil
}
