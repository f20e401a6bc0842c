package isobmff

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel error values. Callers compare against these with errors.Is;
// wrapping with github.com/pkg/errors preserves that since Wrapf results
// implement Unwrap.
var (
	// errOutOfBounds is returned by Reader.ReadExact when the requested
	// read would cross the active limit. It doubles as a termination
	// signal for ReadList: a repeated-field list ends when the limit is
	// reached, or at the first read that runs out of bounds on trailing
	// partial bytes, not by a count prefix.
	errOutOfBounds = errors.New("isobmff: read out of bounds")

	// errAlreadyPresent is returned by ExactlyOne.Set when called a second
	// time for the same field. Optional.Set never fails (Optional
	// overwrites).
	errAlreadyPresent = errors.New("isobmff: field already present")

	// errNotFound is wrapped with the missing field's name by newNotFoundError.
	errNotFound = errors.New("isobmff: required field not found")

	// errCo64OrStcoNotFound is returned by the Sample Table Builder when
	// a Stbl has neither a Stco nor a Co64 chunk offset table.
	errCo64OrStcoNotFound = errors.New("isobmff: stbl has neither stco nor co64")
)

// IsOutOfBounds reports whether err is (or wraps) the out-of-bounds sentinel.
func IsOutOfBounds(err error) bool { return errors.Is(err, errOutOfBounds) }

// IsAlreadyPresent reports whether err is (or wraps) the already-present sentinel.
func IsAlreadyPresent(err error) bool { return errors.Is(err, errAlreadyPresent) }

// IsNotFound reports whether err is (or wraps) the not-found sentinel.
func IsNotFound(err error) bool { return errors.Is(err, errNotFound) }

// newInvalidDataError reports a box whose header or body violates a
// structural invariant (here: size < 8), tagged with the offending box
// type and size so the caller can locate the failure in a large file.
func newInvalidDataError(tag BoxType, size uint32) error {
	return errors.Errorf("isobmff: invalid box %q: size %d is smaller than the 8-byte header", tag, size)
}

// newNotFoundError wraps errNotFound with the name of the missing
// ExactlyOne field, so an unpopulated required field reports which one.
func newNotFoundError(field string) error {
	return errors.Wrapf(errNotFound, "field %q", field)
}

// wrapBoxErr annotates err with the box tag being processed when the
// failure occurred, per the box-tag-context rule for propagated errors.
func wrapBoxErr(tag BoxType, err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "box %q", tag)
}

// fixedPointString renders a 16.16 fixed-point value (width/height,
// rate) as a decimal string for diagnostic output.
func fixedPointString(v uint32) string {
	return fmt.Sprintf("%d.%04d", v>>16, uint64(v&0xffff)*10000/0x10000)
}
