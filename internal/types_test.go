package internal

import "testing"

func TestParseVocabKind(t *testing.T) {
	cases := []struct {
		input   string
		want    VocabKind
		wantErr bool
	}{
		{input: "affiliations", want: VocabAffiliations},
		{input: "AFFILIATIONS", want: VocabAffiliations},
		{input: " subjects ", want: VocabSubjects},
		{input: "names", want: VocabNames},
		{input: "funding", want: VocabFunding},
		{input: "awards", want: VocabAwards},
		{input: "journals", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range cases {
		kind, err := ParseVocabKind(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseVocabKind(%q) expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseVocabKind(%q): %v", tc.input, err)
		}
		if kind != tc.want {
			t.Fatalf("ParseVocabKind(%q) = %s, want %s", tc.input, kind, tc.want)
		}
	}
}
