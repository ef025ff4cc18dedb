package pipeline

import (
	"encoding/json"
	"errors"
	"os"

	"vocabconv/internal"
)

// rawLabel mirrors one source label object. The text fields decode as
// pointers so that JSON null and an absent key both land as nil and get
// coalesced to "" in one place, while a wrong type still fails the decode.
type rawLabel struct {
	ISO639 *string `json:"iso639"`
	Label  *string `json:"label"`
}

type rawAffiliation struct {
	ID       *string    `json:"id"`
	Name     *string    `json:"name"`
	Labels   []rawLabel `json:"labels"`
	Acronyms []string   `json:"acronyms"`
}

// LoadAffiliations reads a ROR-style JSON dump into raw affiliation records.
// The whole file is materialized before decoding; records come back in
// source order.
func LoadAffiliations(path string) ([]internal.RawAffiliation, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, &SourceReadError{Path: path, Err: err}
	}

	var raw []rawAffiliation
	if err := json.Unmarshal(blob, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &SourceSchemaError{Path: path, Err: err}
		}
		return nil, &SourceReadError{Path: path, Err: err}
	}

	items := make([]internal.RawAffiliation, 0, len(raw))
	for _, r := range raw {
		item := internal.RawAffiliation{
			ID:       orEmpty(r.ID),
			Name:     orEmpty(r.Name),
			Labels:   make([]internal.RawLabel, 0, len(r.Labels)),
			Acronyms: r.Acronyms,
		}
		for _, l := range r.Labels {
			item.Labels = append(item.Labels, internal.RawLabel{
				ISO639: orEmpty(l.ISO639),
				Label:  orEmpty(l.Label),
			})
		}
		items = append(items, item)
	}
	return items, nil
}

func orEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
