// Package search implements line filtering over already-loaded file
// contents. Both entry points are pure functions with no error path.
package search

import "strings"

// Lines splits contents on newline boundaries with terminators stripped.
// A trailing newline does not produce an extra empty line, and CRLF line
// endings are handled by trimming the carriage return. Empty contents yield
// no lines. The returned lines are substrings of contents and share its
// backing array.
func Lines(contents string) []string {
	if contents == "" {
		return nil
	}

	lines := strings.Split(contents, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Search returns every line of contents containing query as a contiguous
// substring, in file order. The empty query matches every line.
func Search(query, contents string) []string {
	var results []string
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseInsensitive is Search with case folded out: the query is
// lowercased once and compared against a lowercased copy of each line.
// Matching lines are returned with their original casing.
func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)

	var results []string
	for _, line := range Lines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			results = append(results, line)
		}
	}
	return results
}
