// Package lexicon provides the immutable store over the decoded record
// collections. Built once, safe for concurrent readers.
package lexicon

import (
	"errors"
	"fmt"
	"sort"

	"github.com/frizinak/skloru/russian"
)

var ErrNotFound = errors.New("not found")

// NotFoundError reports a canonical form absent from its collection.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Kind, e.Key, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// DuplicateError reports a canonical key occurring twice within one
// collection at store construction.
type DuplicateError struct {
	Kind string
	Key  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s %q", e.Kind, e.Key)
}

// Picker supplies uniform random indices; *math/rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

// Store holds the four collections keyed by canonical form.
// No mutation after New: one instance can be shared freely.
type Store struct {
	nouns      map[string]*russian.Noun
	adjectives map[string]*russian.Adjective
	pronouns   map[string]*russian.Pronoun
	stems      map[russian.Case]russian.Stem

	nounKeys      []string
	adjectiveKeys []string
	pronounKeys   []string
}

// New builds a Store from l. Duplicate keys within a collection are a
// construction error, never a silent overwrite.
func New(l russian.Lexicon) (*Store, error) {
	s := &Store{
		nouns:      make(map[string]*russian.Noun, len(l.Nouns)),
		adjectives: make(map[string]*russian.Adjective, len(l.Adjectives)),
		pronouns:   make(map[string]*russian.Pronoun, len(l.Pronouns)),
		stems:      make(map[russian.Case]russian.Stem, len(l.Stems)),
	}

	for i := range l.Nouns {
		n := &l.Nouns[i]
		if _, ok := s.nouns[n.Word]; ok {
			return nil, &DuplicateError{Kind: "noun", Key: n.Word}
		}
		s.nouns[n.Word] = n
		s.nounKeys = append(s.nounKeys, n.Word)
	}
	for i := range l.Adjectives {
		a := &l.Adjectives[i]
		if _, ok := s.adjectives[a.Word]; ok {
			return nil, &DuplicateError{Kind: "adjective", Key: a.Word}
		}
		s.adjectives[a.Word] = a
		s.adjectiveKeys = append(s.adjectiveKeys, a.Word)
	}
	for i := range l.Pronouns {
		p := &l.Pronouns[i]
		if _, ok := s.pronouns[p.Word]; ok {
			return nil, &DuplicateError{Kind: "pronoun", Key: p.Word}
		}
		s.pronouns[p.Word] = p
		s.pronounKeys = append(s.pronounKeys, p.Word)
	}
	for _, st := range l.Stems {
		if _, ok := s.stems[st.Case]; ok {
			return nil, &DuplicateError{Kind: "stem", Key: st.Case.String()}
		}
		s.stems[st.Case] = st
	}

	// sorted key lists keep iteration and seeded random picks stable
	sort.Strings(s.nounKeys)
	sort.Strings(s.adjectiveKeys)
	sort.Strings(s.pronounKeys)

	return s, nil
}

func (s *Store) Noun(word string) (*russian.Noun, error) {
	if n, ok := s.nouns[word]; ok {
		return n, nil
	}
	return nil, &NotFoundError{Kind: "noun", Key: word}
}

func (s *Store) Adjective(word string) (*russian.Adjective, error) {
	if a, ok := s.adjectives[word]; ok {
		return a, nil
	}
	return nil, &NotFoundError{Kind: "adjective", Key: word}
}

func (s *Store) Pronoun(word string) (*russian.Pronoun, error) {
	if p, ok := s.pronouns[word]; ok {
		return p, nil
	}
	return nil, &NotFoundError{Kind: "pronoun", Key: word}
}

// Stem returns the sentence stem for c. The stem table is editable
// data, so a missing case is a real runtime condition, not a bug.
func (s *Store) Stem(c russian.Case) (russian.Stem, error) {
	if st, ok := s.stems[c]; ok {
		return st, nil
	}
	return russian.Stem{}, &NotFoundError{Kind: "stem", Key: c.String()}
}

func (s *Store) Nouns() []string      { return s.nounKeys }
func (s *Store) Adjectives() []string { return s.adjectiveKeys }
func (s *Store) Pronouns() []string   { return s.pronounKeys }

func (s *Store) RandomNoun(p Picker) *russian.Noun {
	return s.nouns[s.nounKeys[p.Intn(len(s.nounKeys))]]
}

func (s *Store) RandomAdjective(p Picker) *russian.Adjective {
	return s.adjectives[s.adjectiveKeys[p.Intn(len(s.adjectiveKeys))]]
}

func (s *Store) RandomPronoun(p Picker) *russian.Pronoun {
	return s.pronouns[s.pronounKeys[p.Intn(len(s.pronounKeys))]]
}

// SelectNouns returns the keys of all nouns satisfying keep.
func (s *Store) SelectNouns(keep func(*russian.Noun) bool) []string {
	r := make([]string, 0, len(s.nounKeys))
	for _, k := range s.nounKeys {
		if keep(s.nouns[k]) {
			r = append(r, k)
		}
	}
	return r
}

// SelectAdjectives returns the keys of all adjectives satisfying keep.
func (s *Store) SelectAdjectives(keep func(*russian.Adjective) bool) []string {
	r := make([]string, 0, len(s.adjectiveKeys))
	for _, k := range s.adjectiveKeys {
		if keep(s.adjectives[k]) {
			r = append(r, k)
		}
	}
	return r
}

// SelectPronouns returns the keys of all pronouns satisfying keep.
func (s *Store) SelectPronouns(keep func(*russian.Pronoun) bool) []string {
	r := make([]string, 0, len(s.pronounKeys))
	for _, k := range s.pronounKeys {
		if keep(s.pronouns[k]) {
			r = append(r, k)
		}
	}
	return r
}
