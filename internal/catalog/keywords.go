// Playrec - Play Store App Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playrec

package catalog

import (
	"sort"
	"strings"

	"github.com/kljensen/snowball/english"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MinKeywordOccurrences is how many stem instances, catalog-wide, a keyword
// needs before it becomes a dimension.
const MinKeywordOccurrences = 2

// strippedRunes are removed from names before tokenizing: ASCII punctuation
// plus the trademark sign.
const strippedRunes = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~™"

// stopWords is the common English word-cloud stop list.
var stopWords = toSet([]string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "an",
	"and", "any", "are", "aren't", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "can't", "cannot", "com",
	"could", "couldn't", "did", "didn't", "do", "does", "doesn't", "doing", "don't", "down",
	"during", "each", "else", "ever", "few", "for", "from", "further", "get", "had",
	"hadn't", "has", "hasn't", "have", "haven't", "having", "he", "he'd", "he'll", "he's",
	"hence", "her", "here", "here's", "hers", "herself", "him", "himself", "his", "how",
	"how's", "however", "http", "i", "i'd", "i'll", "i'm", "i've", "if", "in",
	"into", "is", "isn't", "it", "it's", "its", "itself", "just", "k", "let's",
	"like", "me", "more", "most", "mustn't", "my", "myself", "no", "nor", "not",
	"of", "off", "on", "once", "only", "or", "other", "otherwise", "ought", "our",
	"ours", "ourselves", "out", "over", "own", "r", "same", "shall", "shan't", "she",
	"she'd", "she'll", "she's", "should", "shouldn't", "since", "so", "some", "such", "than",
	"that", "that's", "the", "their", "theirs", "them", "themselves", "then", "there", "there's",
	"therefore", "these", "they", "they'd", "they'll", "they're", "they've", "this", "those", "through",
	"to", "too", "under", "until", "up", "very", "was", "wasn't", "we", "we'd",
	"we'll", "we're", "we've", "were", "weren't", "what", "what's", "when", "when's", "where",
	"where's", "which", "while", "who", "who's", "whom", "why", "why's", "with", "won't",
	"would", "wouldn't", "www", "you", "you'd", "you'll", "you're", "you've", "your", "yours",
	"yourself", "yourselves",
})

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsStopWord reports whether w is dropped during keyword extraction.
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

// Lower lower-cases s with Unicode-aware case mapping.
// A fresh Caser is used per call since Casers are not safe for concurrent use.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ExtractKeywords turns an app name into its ordered list of stems.
// Duplicates are kept; the result is deterministic for identical input.
//
//	ExtractKeywords("My Talking Tom!™") // [talk tom]
func ExtractKeywords(name string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(strippedRunes, r) {
			return -1
		}
		return r
	}, Lower(name))

	tokens := strings.Fields(cleaned)
	stems := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if IsStopWord(tok) {
			continue
		}
		if stem := english.Stem(tok, true); stem != "" {
			stems = append(stems, stem)
		}
	}
	return stems
}

// CanonicalKeywords counts every stem instance across the catalog and
// returns, sorted, those seen at least MinKeywordOccurrences times.
func CanonicalKeywords(keywordLists [][]string) []string {
	counts := make(map[string]int)
	for _, kws := range keywordLists {
		for _, kw := range kws {
			counts[kw]++
		}
	}

	out := make([]string, 0, len(counts))
	for kw, n := range counts {
		if n >= MinKeywordOccurrences {
			out = append(out, kw)
		}
	}
	sort.Strings(out)
	return out
}

// EncodeKeywords one-hot encodes an entry's stems against the canonical dimensions.
func EncodeKeywords(keywords, canonical []string) []uint8 {
	present := toSet(keywords)
	vec := make([]uint8, len(canonical))
	for i, kw := range canonical {
		if _, ok := present[kw]; ok {
			vec[i] = 1
		}
	}
	return vec
}
