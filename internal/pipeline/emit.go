package pipeline

import (
	"os"

	"gopkg.in/yaml.v3"

	"vocabconv/internal"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteYAML serializes the entries, in order, as a YAML list prefixed with a
// UTF-8 byte-order marker so downstream tooling detects the encoding. A
// failure mid-write leaves the partial file in place.
func WriteYAML(entries []internal.VocabEntry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &DestinationWriteError{Path: path, Err: err}
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return &DestinationWriteError{Path: path, Err: err}
	}

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		_ = enc.Close()
		return &DestinationWriteError{Path: path, Err: err}
	}
	if err := enc.Close(); err != nil {
		return &DestinationWriteError{Path: path, Err: err}
	}
	return nil
}
