package morphologik

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// featuresFile is the on-disk JSON shape of a dictionary's features file:
//
//	{"encoding":"UTF-8","separator":"+","usesPrefixes":false,"usesInfixes":false}
type featuresFile struct {
	Encoding     string `json:"encoding"`
	Separator    string `json:"separator"`
	UsesPrefixes bool   `json:"usesPrefixes"`
	UsesInfixes  bool   `json:"usesInfixes"`
}

// LoadFeatures parses a features file from reader.
func LoadFeatures(reader io.Reader) (Features, error) {
	var ff featuresFile
	if err := json.NewDecoder(reader).Decode(&ff); err != nil {
		return Features{}, fmt.Errorf("morphologik: decode features file: %w", err)
	}
	if len(ff.Separator) != 1 {
		return Features{}, fmt.Errorf("morphologik: separator must be exactly one byte, got %q", ff.Separator)
	}
	return NewFeatures(ff.Encoding, ff.Separator[0], ff.UsesPrefixes, ff.UsesInfixes)
}

// LoadFeaturesFile opens and parses the features file at path.
func LoadFeaturesFile(path string) (Features, error) {
	f, err := os.Open(path)
	if err != nil {
		return Features{}, fmt.Errorf("morphologik: open features file: %w", err)
	}
	defer f.Close()
	return LoadFeatures(f)
}
