package morphologik

import (
	"bytes"
	"fmt"

	"github.com/smietanka/morfologik-stemming/charset"
)

// deltaFunc is one of standardEncodeDelta / prefixEncodeDelta /
// infixEncodeDelta: it reduces a (surface, lemma) byte pair to a short
// delta code.
type deltaFunc func(surface, lemma []byte) []byte

// StandardEncode composes an FSA record using the standard delta scheme:
// surface ∥ sep ∥ delta ∥ sep ∥ tag.
func (f Features) StandardEncode(form, lemma, tag string) (string, error) {
	return f.encodeRecord(standardEncodeDelta, form, lemma, tag)
}

// PrefixEncode composes an FSA record using the prefix delta scheme.
func (f Features) PrefixEncode(form, lemma, tag string) (string, error) {
	return f.encodeRecord(prefixEncodeDelta, form, lemma, tag)
}

// InfixEncode composes an FSA record using the infix delta scheme.
func (f Features) InfixEncode(form, lemma, tag string) (string, error) {
	return f.encodeRecord(infixEncodeDelta, form, lemma, tag)
}

func (f Features) encodeRecord(fn deltaFunc, form, lemma, tag string) (string, error) {
	w, err := f.EncodeWord(form)
	if err != nil {
		return "", err
	}
	m, err := f.EncodeWord(lemma)
	if err != nil {
		return "", err
	}
	t, err := f.EncodeWord(tag)
	if err != nil {
		return "", err
	}
	if err := f.checkNoSeparator(w, m, t); err != nil {
		return "", err
	}
	delta := fn(w, m)
	return string(assembleRecord(w, f.Separator, delta, t)), nil
}

// StandardEncodeUTF8, PrefixEncodeUTF8 and InfixEncodeUTF8 are UTF-8
// round-trip-shim variants: form, lemma and tag are treated as UTF-8
// regardless of Features.EncodingName, so that callers working purely in
// UTF-8 can produce a record whose control bytes describe offsets into
// the UTF-8 byte sequence rather than into Features' configured charset.
//
// The shim reinterprets each UTF-8 byte as one Latin-1 character before
// running the byte-oriented codec and reverses that on the way out. A
// codec that already counts bytes rather than characters makes this a
// byte-level identity, but the step is kept explicit rather than
// collapsed away so the calling convention stays uniform regardless of
// which charset a particular dictionary declares.
func (f Features) StandardEncodeUTF8(form, lemma, tag string) (string, error) {
	return f.encodeRecordUTF8(standardEncodeDelta, form, lemma, tag)
}

func (f Features) PrefixEncodeUTF8(form, lemma, tag string) (string, error) {
	return f.encodeRecordUTF8(prefixEncodeDelta, form, lemma, tag)
}

func (f Features) InfixEncodeUTF8(form, lemma, tag string) (string, error) {
	return f.encodeRecordUTF8(infixEncodeDelta, form, lemma, tag)
}

func (f Features) encodeRecordUTF8(fn deltaFunc, form, lemma, tag string) (string, error) {
	w := byteWideRoundTrip(form)
	m := byteWideRoundTrip(lemma)
	t := byteWideRoundTrip(tag)
	if err := f.checkNoSeparator(w, m, t); err != nil {
		return "", err
	}
	delta := fn(w, m)
	return string(assembleRecord(w, f.Separator, delta, t)), nil
}

func byteWideRoundTrip(s string) []byte {
	return charset.FromByteWide(charset.ByteWide([]byte(s)))
}

func assembleRecord(surface []byte, sep byte, delta, tag []byte) []byte {
	out := make([]byte, 0, len(surface)+1+len(delta)+1+len(tag))
	out = append(out, surface...)
	out = append(out, sep)
	out = append(out, delta...)
	out = append(out, sep)
	out = append(out, tag...)
	return out
}

// checkNoSeparator enforces separator safety: the caller's
// surface/lemma/tag must not themselves contain the separator byte, or
// the assembled record would be ambiguous to split on decode.
func (f Features) checkNoSeparator(fields ...[]byte) error {
	for _, field := range fields {
		if bytes.IndexByte(field, f.Separator) >= 0 {
			return fmt.Errorf("morphologik: field %q contains separator byte %q", field, f.Separator)
		}
	}
	return nil
}
