package morphologik

// commonPrefix returns the length in bytes of the longest common prefix of
// a and b.
func commonPrefix(a, b []byte) int {
	max := len(a)
	if len(b) < max {
		max = len(b)
	}
	for i := 0; i < max; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return max
}

func ctrl(v int) byte { return byte(v) + 'A' }

// standardEncodeDelta implements the standard scheme: strip the last
// (ℓ-p) bytes of surface, append the literal lemma ending.
func standardEncodeDelta(surface, lemma []byte) []byte {
	p := commonPrefix(surface, lemma)
	k := len(surface) - p
	out := make([]byte, 0, 1+len(lemma)-p)
	out = append(out, ctrl(k))
	out = append(out, lemma[p:]...)
	return out
}

// prefixEncodeDelta implements the prefix scheme. If surface and lemma
// share a common prefix, it degenerates to the standard scheme prefixed
// with a no-skip 'A'. Otherwise it searches offsets 1..MaxPrefixLen for a
// skip that exposes a common stem of more than two bytes.
func prefixEncodeDelta(surface, lemma []byte) []byte {
	p := commonPrefix(surface, lemma)
	if p > 0 {
		k := len(surface) - p
		out := make([]byte, 0, 2+len(lemma)-p)
		out = append(out, 'A', ctrl(k))
		out = append(out, lemma[p:]...)
		return out
	}

	max := len(surface)
	if max > MaxPrefixLen {
		max = MaxPrefixLen
	}
	for i := 1; i <= max; i++ {
		p1 := commonPrefix(surface[i:], lemma)
		if p1 > 2 {
			k := len(surface) - i - p1
			out := make([]byte, 0, 2+len(lemma)-p1)
			out = append(out, ctrl(i), ctrl(k))
			out = append(out, lemma[p1:]...)
			return out
		}
	}
	out := make([]byte, 0, 2+len(lemma))
	out = append(out, 'A', ctrl(len(surface)))
	out = append(out, lemma...)
	return out
}

// infixEncodeDelta implements the infix scheme: as well as a leading skip
// (as in the prefix scheme) it allows one interior deletion. Ported
// directly from FSAMorphCoder.infixEncode.
func infixEncodeDelta(surface, lemma []byte) []byte {
	l := len(surface)
	p := commonPrefix(surface, lemma)
	max := l
	if max > MaxInfixLen {
		max = MaxInfixLen
	}

	if p != 0 {
		prefixFound, p1 := 0, 0
		for i := 1; i <= max; i++ {
			p1 = commonPrefix(surface[i:], lemma)
			if p1 > 2 {
				prefixFound = i
				break
			}
		}

		infixFound, p2 := 0, 0
		max2 := l - p
		if max2 > MaxInfixLen {
			max2 = MaxInfixLen
		}
		for i := 1; i <= max2; i++ {
			p2 = commonPrefix(surface[p+i:], lemma[p:])
			if p2 > 2 {
				infixFound = i
				break
			}
		}

		switch {
		case prefixFound > infixFound:
			if prefixFound > 0 && p1 > p {
				out := make([]byte, 0, 3+len(lemma)-p1)
				out = append(out, 'A', ctrl(prefixFound), ctrl(l-prefixFound-p1))
				out = append(out, lemma[p1:]...)
				return out
			}
			out := make([]byte, 0, 3+len(lemma)-p)
			out = append(out, 'A', 'A', ctrl(l-p))
			out = append(out, lemma[p:]...)
			return out
		case infixFound > 0 && p2 > 0:
			out := make([]byte, 0, 3+len(lemma)-(p+p2))
			out = append(out, ctrl(p), ctrl(infixFound), ctrl(l-p-p2-infixFound))
			out = append(out, lemma[p+p2:]...)
			return out
		default:
			out := make([]byte, 0, 3+len(lemma)-p)
			out = append(out, 'A', 'A', ctrl(l-p))
			out = append(out, lemma[p:]...)
			return out
		}
	}

	prefixFound, p1 := 0, 0
	for i := 1; i <= max; i++ {
		p1 = commonPrefix(surface[i:], lemma)
		if p1 > 2 {
			prefixFound = i
			break
		}
	}
	if prefixFound != 0 {
		out := make([]byte, 0, 3+len(lemma)-p1)
		out = append(out, 'A', ctrl(prefixFound), ctrl(l-prefixFound-p1))
		out = append(out, lemma[p1:]...)
		return out
	}
	out := make([]byte, 0, 3+len(lemma))
	out = append(out, 'A', 'A', ctrl(l))
	out = append(out, lemma...)
	return out
}

// decodeDelta reverses one of the three schemes. scratch is grown (never
// shrunk) and reused across calls on the same Lookup. It returns a slice
// backed by scratch; callers that need to retain the result past the
// next decodeDelta call must copy it.
//
// Any guard failure degrades gracefully to returning delta verbatim: a
// malformed record is recovered locally rather than surfaced as an
// error, preserving legacy dictionaries that stored raw lemmas.
func decodeDelta(scratch *[]byte, delta, surface []byte, usesPrefixes, usesInfixes bool) []byte {
	if len(delta) == 0 {
		return (*scratch)[:0]
	}
	l := len(surface)
	k := int(delta[0]) - 'A'

	grow := func(n int) []byte {
		if cap(*scratch) < n {
			*scratch = make([]byte, n)
		}
		return (*scratch)[:0]
	}

	switch {
	case usesInfixes:
		if len(delta) >= 3 && k >= 0 {
			a := int(delta[1]) - 'A'
			b := int(delta[2]) - 'A'
			if a >= 0 && b >= 0 && k <= l && k+a <= l && b <= l && k+a <= l-b {
				out := grow(k + (l - a - b - k) + len(delta) - 3)
				out = append(out, surface[:k]...)
				out = append(out, surface[k+a:l-b]...)
				out = append(out, delta[3:]...)
				*scratch = out
				return out
			}
		}
	case usesPrefixes:
		if len(delta) >= 2 && k >= 0 {
			s := int(delta[1]) - 'A'
			if s >= 0 && s <= l && k <= l-s {
				out := grow((l - s - k) + len(delta) - 2)
				out = append(out, surface[k:l-s]...)
				out = append(out, delta[2:]...)
				*scratch = out
				return out
			}
		}
	default:
		if k >= 0 && k <= l {
			out := grow((l - k) + len(delta) - 1)
			out = append(out, surface[:l-k]...)
			out = append(out, delta[1:]...)
			*scratch = out
			return out
		}
	}

	// Fallback: guards failed, return the record's lemma field verbatim.
	out := grow(len(delta))
	out = append(out, delta...)
	*scratch = out
	return out
}
