package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape."

func TestSearch_CaseSensitive(t *testing.T) {
	// "Duct tape." must not match: the scan is byte-exact.
	results := Search("duct", poem)
	assert.Equal(t, []string{"safe, fast, productive."}, results)
}

func TestSearchCaseInsensitive(t *testing.T) {
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nTrust me."
	results := SearchCaseInsensitive("rUsT", contents)
	assert.Equal(t, []string{"Rust:", "Trust me."}, results)
}

func TestSearchCaseInsensitive_PreservesOriginalCasing(t *testing.T) {
	results := SearchCaseInsensitive("DUCT", poem)
	assert.Equal(t, []string{"safe, fast, productive.", "Duct tape."}, results)
}

func TestSearch_NoMatches(t *testing.T) {
	assert.Empty(t, Search("zebra", poem))
}

func TestSearch_EmptyQueryMatchesEveryLine(t *testing.T) {
	all := []string{"Rust:", "safe, fast, productive.", "Pick three.", "Duct tape."}
	assert.Equal(t, all, Search("", poem))
	assert.Equal(t, all, SearchCaseInsensitive("", poem))
}

func TestSearch_EmptyContents(t *testing.T) {
	assert.Empty(t, Search("anything", ""))
	assert.Empty(t, SearchCaseInsensitive("anything", ""))
}

func TestSearch_Idempotent(t *testing.T) {
	first := Search("t", poem)
	second := Search("t", poem)
	assert.Equal(t, first, second)
}

func TestLines(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		want     []string
	}{
		{"empty", "", nil},
		{"single line no terminator", "hello", []string{"hello"}},
		{"trailing newline has no extra line", "one\ntwo\n", []string{"one", "two"}},
		{"lone newline is one empty line", "\n", []string{""}},
		{"crlf terminators stripped", "one\r\ntwo\r\n", []string{"one", "two"}},
		{"blank line preserved", "one\n\ntwo", []string{"one", "", "two"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Lines(tc.contents))
		})
	}
}

func TestSearch_CRLFContents(t *testing.T) {
	results := Search("two", "one\r\ntwo\r\nthree\r\n")
	assert.Equal(t, []string{"two"}, results)
}
