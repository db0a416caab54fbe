package morphologik

import (
	"bytes"
	"testing"
)

func TestCommonPrefix(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"abcx", "abc", 3},
		{"foo", "bar", 0},
		{"werk", "werk", 4},
		{"", "abc", 0},
	}
	for _, c := range cases {
		if got := commonPrefix([]byte(c.a), []byte(c.b)); got != c.want {
			t.Errorf("commonPrefix(%q,%q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

// TestStandardScenarios covers the three standard-scheme end-to-end
// scenarios: identical surface/lemma, a trailing truncation, and a
// complete mismatch.
func TestStandardScenarios(t *testing.T) {
	cases := []struct {
		surface, lemma string
		wantDelta      string
	}{
		{"werk", "werk", "A"},
		{"abcx", "abc", "B"},
		{"foo", "bar", "Dbar"},
	}
	for _, c := range cases {
		delta := standardEncodeDelta([]byte(c.surface), []byte(c.lemma))
		if string(delta) != c.wantDelta {
			t.Errorf("standardEncodeDelta(%q,%q) = %q, want %q", c.surface, c.lemma, delta, c.wantDelta)
		}
		var scratch []byte
		got := decodeDelta(&scratch, delta, []byte(c.surface), false, false)
		if string(got) != c.lemma {
			t.Errorf("decode(%q) against %q = %q, want %q", delta, c.surface, got, c.lemma)
		}
	}
}

func TestPrefixScenario(t *testing.T) {
	// Skipping a 2-byte prefix exposes a long common stem.
	surface := "naABCDEFGHI"
	lemma := "ABCDEFGHI"
	delta := prefixEncodeDelta([]byte(surface), []byte(lemma))
	if len(delta) < 2 || delta[0] != 'A'+2 {
		t.Fatalf("expected a skip-offset of 2, got delta=%q", delta)
	}
	var scratch []byte
	got := decodeDelta(&scratch, delta, []byte(surface), true, false)
	if string(got) != lemma {
		t.Fatalf("decode(%q) against %q = %q, want %q", delta, surface, got, lemma)
	}
}

func TestInfixScenario(t *testing.T) {
	// An interior deletion of "XY" at offset 2.
	surface := "ABXYCDE"
	lemma := "ABCDE"
	delta := infixEncodeDelta([]byte(surface), []byte(lemma))
	if len(delta) < 1 || delta[0] != 'A'+2 {
		t.Fatalf("expected an interior-deletion offset of 2, got delta=%v", delta)
	}
	var scratch []byte
	got := decodeDelta(&scratch, delta, []byte(surface), true, true)
	if string(got) != lemma {
		t.Fatalf("decode(%v) against %q = %q, want %q", delta, surface, got, lemma)
	}
}

func TestEmptyDeltaDecodesToEmptyString(t *testing.T) {
	var scratch []byte
	for _, scheme := range []struct {
		prefixes, infixes bool
	}{{false, false}, {true, false}, {true, true}} {
		got := decodeDelta(&scratch, nil, []byte("anything"), scheme.prefixes, scheme.infixes)
		if len(got) != 0 {
			t.Fatalf("decodeDelta(nil) = %q, want empty", got)
		}
	}
}

func TestDecodeFallsBackOnGuardFailure(t *testing.T) {
	var scratch []byte
	// k = 200 - 'A', far beyond len(surface): guard fails, falls back to
	// the delta bytes verbatim.
	delta := []byte{200, 'x', 'y'}
	got := decodeDelta(&scratch, delta, []byte("ab"), false, false)
	if string(got) != string(delta) {
		t.Fatalf("expected verbatim fallback %q, got %q", delta, got)
	}
}

func TestMonotoneScratchBuffer(t *testing.T) {
	var scratch []byte
	prevCap := cap(scratch)
	surfaces := []string{"a", "abcdefgh", "ab", "abcdefghijklmnop"}
	for _, s := range surfaces {
		delta := standardEncodeDelta([]byte(s), []byte(s+"-lemma"))
		decodeDelta(&scratch, delta, []byte(s), false, false)
		if cap(scratch) < prevCap {
			t.Fatalf("scratch buffer capacity shrank: had %d, now %d", prevCap, cap(scratch))
		}
		prevCap = cap(scratch)
	}
}

// fuzzRoundTrip is shared by the standard/prefix/infix fuzz targets: for
// any surface/lemma pair neither containing the ASCII NUL byte (used here
// as a stand-in for "no separator"), encoding then decoding a scheme's
// delta against the surface must reproduce the lemma exactly.
func fuzzRoundTrip(t *testing.T, encode deltaFunc, usesPrefixes, usesInfixes bool, surface, lemma string) {
	if bytes.IndexByte([]byte(surface), 0) >= 0 || bytes.IndexByte([]byte(lemma), 0) >= 0 {
		return
	}
	w, m := []byte(surface), []byte(lemma)
	delta := encode(w, m)
	var scratch []byte
	got := decodeDelta(&scratch, delta, w, usesPrefixes, usesInfixes)
	if !bytes.Equal(got, m) {
		t.Fatalf("round trip failed: surface=%q lemma=%q delta=%q got=%q", surface, lemma, delta, got)
	}
}

func FuzzStandardRoundTrip(f *testing.F) {
	f.Add("werk", "werk")
	f.Add("abcx", "abc")
	f.Add("foo", "bar")
	f.Fuzz(func(t *testing.T, surface, lemma string) {
		if len(surface) > 190 || len(lemma) > 190 {
			return
		}
		fuzzRoundTrip(t, standardEncodeDelta, false, false, surface, lemma)
	})
}

func FuzzPrefixRoundTrip(f *testing.F) {
	f.Add("naABCDEFGHI", "ABCDEFGHI")
	f.Add("werk", "werk")
	f.Fuzz(func(t *testing.T, surface, lemma string) {
		if len(surface) > 190 || len(lemma) > 190 {
			return
		}
		fuzzRoundTrip(t, prefixEncodeDelta, true, false, surface, lemma)
	})
}

func FuzzInfixRoundTrip(f *testing.F) {
	f.Add("ABXYCDE", "ABCDE")
	f.Add("werk", "werk")
	f.Fuzz(func(t *testing.T, surface, lemma string) {
		if len(surface) > 190 || len(lemma) > 190 {
			return
		}
		fuzzRoundTrip(t, infixEncodeDelta, true, true, surface, lemma)
	})
}
