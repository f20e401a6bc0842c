package isobmff

import "io"

// Mdat is the Media Data Box. Its payload is routinely hundreds of
// megabytes, so this repo never loads it eagerly: Mdat records where the
// data lives in the stream, and Reader returns a bounded Reader over it on
// demand (used together with a Sample's byte offset/size to read one
// sample at a time).
type Mdat struct {
	root   *Reader
	Offset int64
	Size   int64
}

// Reader returns a bounded Reader scoped to this Mdat's body, independent
// of whatever handle produced it.
func (m Mdat) Reader() *Reader {
	r := m.root.Clone()
	if err := r.SeekFromStart(m.Offset); err != nil {
		return r
	}
	r.SetLimit(m.Size)
	return r
}

// Document is the root of a parsed ISO-BMFF stream: exactly one Ftyp,
// exactly one Moov, and zero or more Mdat boxes (some encoders split media
// data across several).
type Document struct {
	Ftyp ExactlyOne[Ftyp]
	Moov ExactlyOne[Moov]
	Mdat Repeated[Mdat]
}

// Parse reads every top-level box from stream (which must report its
// total length via streamLen, e.g. os.File.Stat().Size()) and returns the
// assembled Document. Unknown top-level boxes (free, skip, and anything
// else) are silently skipped, per the tolerant-reader invariant.
func Parse(stream io.ReadSeeker, streamLen int64) (Document, error) {
	r := NewReader(stream, streamLen)

	var doc Document
	err := walkChildren(r, func(hdr BoxHeader, body *Reader) error {
		switch hdr.Tag {
		case TypeFtyp:
			v, err := ReadFtyp(body)
			if err != nil {
				return err
			}
			return doc.Ftyp.Set(v)
		case TypeMoov:
			v, err := ReadMoov(body)
			if err != nil {
				return err
			}
			return doc.Moov.Set(v)
		case TypeMdat:
			doc.Mdat.Push(Mdat{
				root:   r,
				Offset: body.Pos(),
				Size:   body.Remain(),
			})
		}
		return nil
	})
	if err != nil {
		return Document{}, err
	}
	return doc, nil
}
