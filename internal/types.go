package internal

import (
	"fmt"
	"strings"
)

type VocabKind string

const (
	VocabAffiliations VocabKind = "affiliations"
	VocabNames        VocabKind = "names"
	VocabFunding      VocabKind = "funding"
	VocabAwards       VocabKind = "awards"
	VocabSubjects     VocabKind = "subjects"
)

// SchemeAffiliation tags affiliation identifiers with their source authority.
const SchemeAffiliation = "affiliation"

var vocabKinds = map[VocabKind]bool{
	VocabAffiliations: true,
	VocabNames:        true,
	VocabFunding:      true,
	VocabAwards:       true,
	VocabSubjects:     true,
}

func ParseVocabKind(s string) (VocabKind, error) {
	kind := VocabKind(strings.ToLower(strings.TrimSpace(s)))
	if !vocabKinds[kind] {
		return "", fmt.Errorf("unknown vocabulary kind: %s", s)
	}
	return kind, nil
}

type RawLabel struct {
	ISO639 string
	Label  string
}

type RawAffiliation struct {
	ID       string
	Name     string
	Labels   []RawLabel
	Acronyms []string
}

type Identifier struct {
	Identifier string `yaml:"identifier"`
	Scheme     string `yaml:"scheme"`
}

type VocabEntry struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Title       map[string]string `yaml:"title"`
	Identifiers []Identifier      `yaml:"identifiers"`
	Acronym     *string           `yaml:"acronym,omitempty"`
}

type ConversionRun struct {
	ID         int
	TraceID    string
	Vocab      string
	InputPath  string
	OutputPath string
	Records    int
	DurationMs int64
	CreatedAt  string
}
