package util

import "github.com/mozillazg/go-unidecode"

// Sanitize transliterates ambiguous Unicode characters (Cyrillic, accented
// Latin, CJK) into their approximate ASCII equivalents. The mapping is
// per-character and context-free, so it is idempotent on ASCII input.
func Sanitize(s string) string {
	return unidecode.Unidecode(s)
}

// LastSegment returns the final '/'-delimited segment of s. A string with no
// slash is its own last segment.
func LastSegment(s string) string {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '/' {
			return s[i+1:]
		}
	}
	return s
}
