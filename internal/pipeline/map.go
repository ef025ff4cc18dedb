package pipeline

import (
	"vocabconv/internal"
	"vocabconv/internal/util"
)

// MapAffiliation flattens one raw affiliation into its vocabulary entry.
// Pure: any input produces a valid entry, however degenerate.
func MapAffiliation(item internal.RawAffiliation) internal.VocabEntry {
	idPart := util.LastSegment(util.Sanitize(item.ID))
	name := util.Sanitize(item.Name)

	title := map[string]string{"en": name}
	for _, label := range item.Labels {
		code := util.Sanitize(label.ISO639)
		text := util.Sanitize(label.Label)
		if code != "" && text != "" {
			title[code] = text
		}
	}

	// The first acronym that is non-empty before sanitization wins, even if
	// it sanitizes to something shorter.
	var acronym *string
	for _, a := range item.Acronyms {
		if a != "" {
			s := util.Sanitize(a)
			acronym = &s
			break
		}
	}

	return internal.VocabEntry{
		ID:    idPart,
		Name:  name,
		Title: title,
		Identifiers: []internal.Identifier{
			{Identifier: idPart, Scheme: internal.SchemeAffiliation},
		},
		Acronym: acronym,
	}
}

// MapAffiliations maps every record in order, one entry per record.
func MapAffiliations(items []internal.RawAffiliation) []internal.VocabEntry {
	out := make([]internal.VocabEntry, 0, len(items))
	for _, item := range items {
		out = append(out, MapAffiliation(item))
	}
	return out
}
