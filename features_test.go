package morphologik

import (
	"strings"
	"testing"
)

func TestNewFeaturesInfixImpliesPrefix(t *testing.T) {
	f, err := NewFeatures("UTF-8", '+', false, true)
	if err != nil {
		t.Fatal(err)
	}
	if !f.UsesPrefixes {
		t.Fatal("usesInfixes=true must imply UsesPrefixes=true")
	}
}

func TestNewFeaturesUnknownEncoding(t *testing.T) {
	if _, err := NewFeatures("NOT-A-CHARSET", '+', false, false); err == nil {
		t.Fatal("expected an error for an unresolvable encoding name")
	}
}

func TestLoadFeaturesJSON(t *testing.T) {
	input := `{"encoding":"ISO-8859-1","separator":"+","usesPrefixes":true,"usesInfixes":false}`
	f, err := LoadFeatures(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if f.EncodingName != "ISO-8859-1" || f.Separator != '+' || !f.UsesPrefixes || f.UsesInfixes {
		t.Fatalf("unexpected features: %+v", f)
	}
}

func TestLoadFeaturesRejectsMultiByteSeparator(t *testing.T) {
	input := `{"encoding":"UTF-8","separator":"++","usesPrefixes":false,"usesInfixes":false}`
	if _, err := LoadFeatures(strings.NewReader(input)); err == nil {
		t.Fatal("expected an error for a multi-byte separator")
	}
}
