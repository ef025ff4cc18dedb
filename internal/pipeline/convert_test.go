package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"vocabconv/internal"
)

func TestConvertAffiliations(t *testing.T) {
	tmp := t.TempDir()
	out := filepath.Join(tmp, "affiliations.yaml")

	count, err := ConvertAffiliations(filepath.Join("testdata", "ror_sample.json"), out)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	blob, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(blob, []byte{0xEF, 0xBB, 0xBF}), "output must start with the UTF-8 BOM")

	var entries []internal.VocabEntry
	require.NoError(t, yaml.Unmarshal(blob[3:], &entries))
	require.Len(t, entries, 3)

	first := entries[0]
	assert.Equal(t, "00aaa1234", first.ID)
	assert.Equal(t, "Test University", first.Name)
	assert.Equal(t, map[string]string{
		"en": "Test University",
		"fr": "Universite de Test",
		"de": "Test Universitat",
	}, first.Title)
	require.Len(t, first.Identifiers, 1)
	assert.Equal(t, "00aaa1234", first.Identifiers[0].Identifier)
	assert.Equal(t, "affiliation", first.Identifiers[0].Scheme)
	require.NotNil(t, first.Acronym)
	assert.Equal(t, "TU", *first.Acronym)

	second := entries[1]
	assert.Equal(t, "00bbb5678", second.ID)
	assert.Equal(t, map[string]string{"en": "Another Institute"}, second.Title)
	assert.Nil(t, second.Acronym)

	third := entries[2]
	assert.Equal(t, "", third.ID)
	assert.Equal(t, "Institute with Null Values", third.Name)
	// Both partial labels are dropped, leaving only the en key.
	assert.Equal(t, map[string]string{"en": "Institute with Null Values"}, third.Title)
	assert.Nil(t, third.Acronym)

	// The acronym key is absent from serialized records without one, not null.
	assert.Equal(t, 1, strings.Count(string(blob), "acronym:"))
}

func TestConvertAffiliationsEmptyArray(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "empty.json")
	require.NoError(t, os.WriteFile(src, []byte(`[]`), 0o644))
	out := filepath.Join(tmp, "empty.yaml")

	count, err := ConvertAffiliations(src, out)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	blob, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(blob, []byte{0xEF, 0xBB, 0xBF}))

	var entries []internal.VocabEntry
	require.NoError(t, yaml.Unmarshal(blob[3:], &entries))
	assert.Empty(t, entries)
}

func TestConvertAffiliationsSourceFailureWritesNothing(t *testing.T) {
	tmp := t.TempDir()
	out := filepath.Join(tmp, "never.yaml")

	_, err := ConvertAffiliations(filepath.Join(tmp, "missing.json"), out)
	var readErr *SourceReadError
	require.ErrorAs(t, err, &readErr)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no partial output on source failure")
}

func TestConvertAffiliationsDestinationFailure(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src.json")
	require.NoError(t, os.WriteFile(src, []byte(`[]`), 0o644))

	_, err := ConvertAffiliations(src, filepath.Join(tmp, "no-such-dir", "out.yaml"))
	var writeErr *DestinationWriteError
	require.ErrorAs(t, err, &writeErr)
}
