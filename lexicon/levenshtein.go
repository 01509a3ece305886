package lexicon

import "sort"

func levenshtein(s, t []rune) int {
	d := make([]int, (len(s)+1)*(len(t)+1))
	stride := len(t) + 1
	offset := func(i, j int) int { return i*stride + j }
	min := func(a, b, c int) int {
		if a < b && a < c {
			return a
		} else if b < c {
			return b
		}

		return c
	}

	for i := 1; i <= len(s); i++ {
		d[offset(i, 0)] = i
	}
	for j := 1; j <= len(t); j++ {
		d[offset(0, j)] = j
	}

	for j := 1; j <= len(t); j++ {
		for i := 1; i <= len(s); i++ {
			cost := 1
			if s[i-1] == t[j-1] {
				cost = 0
			}

			d[offset(i, j)] = min(
				d[offset(i-1, j)]+1,
				d[offset(i, j-1)]+1,
				d[offset(i-1, j-1)]+cost,
			)
		}
	}

	return d[offset(len(s), len(t))]
}

type suggestion struct {
	key  string
	dist int
}

func suggest(keys []string, query string, max int) []string {
	q := []rune(query)
	limit := 2
	if len(q) > 6 {
		limit = 3
	}

	matches := make([]suggestion, 0, max)
	for _, k := range keys {
		d := levenshtein(q, []rune(k))
		if d <= limit {
			matches = append(matches, suggestion{k, d})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].dist != matches[j].dist {
			return matches[i].dist < matches[j].dist
		}
		return matches[i].key < matches[j].key
	})

	if len(matches) > max {
		matches = matches[:max]
	}
	r := make([]string, len(matches))
	for i := range matches {
		r[i] = matches[i].key
	}
	return r
}

// SuggestNouns returns up to max noun keys within a small edit distance
// of query, closest first.
func (s *Store) SuggestNouns(query string, max int) []string {
	return suggest(s.nounKeys, query, max)
}

// SuggestAdjectives is SuggestNouns over the adjective collection.
func (s *Store) SuggestAdjectives(query string, max int) []string {
	return suggest(s.adjectiveKeys, query, max)
}

// SuggestPronouns is SuggestNouns over the pronoun collection.
func (s *Store) SuggestPronouns(query string, max int) []string {
	return suggest(s.pronounKeys, query, max)
}
