package morphologik

import (
	"fmt"

	"golang.org/x/text/encoding"

	"github.com/smietanka/morfologik-stemming/charset"
)

// MaxPrefixLen bounds the leading skip the prefix scheme searches for;
// MaxInfixLen bounds both the leading skip and the interior deletion
// length the infix scheme searches for. The tail-strip control value is
// not bounded by either. The control alphabet is ASCII starting at 'A',
// and every control value must fit in 255-65 = 190 (maxOffset) to survive
// the +'A' shift without wrapping past a byte.
const (
	MaxPrefixLen = 3
	MaxInfixLen  = 3
	maxOffset    = 255 - 'A'
)

// Features holds the configuration a compiled dictionary was built with:
// the declared character encoding, the single separator byte used inside
// records, and which delta schemes the dictionary may contain.
//
// Features is immutable after construction and safe to share read-only
// across any number of Lookup instances.
type Features struct {
	EncodingName string
	Separator    byte
	UsesPrefixes bool
	UsesInfixes  bool

	enc encoding.Encoding
}

// NewFeatures validates and constructs a Features block. usesInfixes
// implies usesPrefixes is also considered enabled during decoding,
// regardless of the usesPrefixes value passed in.
func NewFeatures(encodingName string, separator byte, usesPrefixes, usesInfixes bool) (Features, error) {
	enc, err := charset.Resolve(encodingName)
	if err != nil {
		return Features{}, fmt.Errorf("morphologik: invalid features: %w", err)
	}
	return Features{
		EncodingName: encodingName,
		Separator:    separator,
		UsesPrefixes: usesPrefixes || usesInfixes,
		UsesInfixes:  usesInfixes,
		enc:          enc,
	}, nil
}

// Encoding returns the resolved charset codec for this Features block.
func (f Features) Encoding() encoding.Encoding { return f.enc }

// EncodeWord converts a Go string into the bytes stored/looked up in the
// dictionary's declared charset. A failure here means the declared
// encoding rejects a byte sequence that actually occurs in a live
// dictionary, and is surfaced as a runtime error rather than recovered.
func (f Features) EncodeWord(s string) ([]byte, error) {
	return charset.EncodeString(f.enc, s)
}

// DecodeWord converts dictionary-charset bytes back into a Go string.
func (f Features) DecodeWord(b []byte) (string, error) {
	return charset.DecodeBytes(f.enc, b)
}
