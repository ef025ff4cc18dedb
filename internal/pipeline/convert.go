package pipeline

// ConvertAffiliations runs the whole pipeline for one source file: load,
// map each record in order, emit. Returns the number of converted records.
// Nothing is written to the destination unless the source loaded cleanly.
func ConvertAffiliations(inputPath, outputPath string) (int, error) {
	items, err := LoadAffiliations(inputPath)
	if err != nil {
		return 0, err
	}

	entries := MapAffiliations(items)

	if err := WriteYAML(entries, outputPath); err != nil {
		return 0, err
	}
	return len(entries), nil
}
