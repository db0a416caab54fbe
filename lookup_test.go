package morphologik

import (
	"reflect"
	"testing"

	"github.com/smietanka/morfologik-stemming/fsa"
	"github.com/smietanka/morfologik-stemming/morphtab"
)

func mustFeatures(t *testing.T, usesPrefixes, usesInfixes bool) Features {
	t.Helper()
	f, err := NewFeatures("UTF-8", '+', usesPrefixes, usesInfixes)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

// TestLookupScenario exercises a full build-then-lookup round trip: a
// known surface form resolves to its lemma and tag, and an unknown form
// returns no results.
func TestLookupScenario(t *testing.T) {
	features := mustFeatures(t, false, false)

	rec, err := features.StandardEncode("werken", "werk", "V")
	if err != nil {
		t.Fatal(err)
	}

	b := fsa.NewBuilder()
	b.Insert([]byte(rec))
	dict := LoadDictionary(b.Freeze(), features)
	lookup := NewLookup(dict)

	lemmas, err := lookup.Stem("werken")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(lemmas, []string{"werk"}) {
		t.Fatalf("Stem(werken) = %v, want [werk]", lemmas)
	}

	forms, err := lookup.StemAndForm("werken")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(forms, []string{"werk", "V"}) {
		t.Fatalf("StemAndForm(werken) = %v, want [werk V]", forms)
	}

	miss, err := lookup.Stem("xyzzy")
	if err != nil {
		t.Fatal(err)
	}
	if len(miss) != 0 {
		t.Fatalf("Stem(xyzzy) = %v, want empty", miss)
	}
}

func TestLookupMultipleEntriesPreserveOrder(t *testing.T) {
	features := mustFeatures(t, false, false)

	var records []string
	for _, triple := range [][3]string{
		{"werken", "werk", "V"},
		{"werken", "werk", "N"},
	} {
		rec, err := features.StandardEncode(triple[0], triple[1], triple[2])
		if err != nil {
			t.Fatal(err)
		}
		records = append(records, rec)
	}

	b := fsa.NewBuilder()
	for _, r := range records {
		b.Insert([]byte(r))
	}
	dict := LoadDictionary(b.Freeze(), features)
	lookup := NewLookup(dict)

	first, err := lookup.StemAndForm("werken")
	if err != nil {
		t.Fatal(err)
	}
	second, err := lookup.StemAndForm("werken")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two lookups of the same word diverged: %v vs %v", first, second)
	}
	if len(first) != 4 {
		t.Fatalf("expected two (lemma,tag) pairs, got %v", first)
	}
}

func TestBuildDictionaryAndFrequency(t *testing.T) {
	features := mustFeatures(t, false, false)
	records := []morphtab.Record{
		{Surface: "werken", Lemma: "werk", Tag: "V", Frequency: 42},
		{Surface: "werkster", Lemma: "werk", Tag: "N"},
	}

	dict, err := BuildDictionary(morphtab.NewSliceReader(records), SchemeStandard, features)
	if err != nil {
		t.Fatal(err)
	}

	lookup := NewLookup(dict)
	lemmas, err := lookup.Stem("werkster")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(lemmas, []string{"werk"}) {
		t.Fatalf("Stem(werkster) = %v, want [werk]", lemmas)
	}

	freq, ok, err := dict.Frequency(SchemeStandard, "werken", "werk", "V")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || freq != 42 {
		t.Fatalf("Frequency(werken) = (%d,%v), want (42,true)", freq, ok)
	}

	_, ok, err = dict.Frequency(SchemeStandard, "werkster", "werk", "N")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("expected no payload for a record inserted without a frequency")
	}
}
