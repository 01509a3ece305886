// Package decline composes the lexicon store and the form-resolution
// rules into the operations study tools consume.
package decline

import (
	"math/rand"
	"time"

	"github.com/frizinak/skloru/lexicon"
	"github.com/frizinak/skloru/russian"
)

type Service struct {
	store *lexicon.Store
	rnd   lexicon.Picker
}

// New creates a Service. A nil picker gets a time-seeded source; pass a
// seeded *rand.Rand (or a stub) for deterministic picks.
func New(store *lexicon.Store, rnd lexicon.Picker) *Service {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{store: store, rnd: rnd}
}

func (s *Service) Store() *lexicon.Store { return s.store }

// Noun declines the noun stored under word.
func (s *Service) Noun(word string, c russian.Case, n russian.Number) (string, error) {
	noun, err := s.store.Noun(word)
	if err != nil {
		return "", err
	}
	return noun.Form(c, n)
}

// Adjective declines the adjective stored under adj, agreeing with the
// noun stored under noun (the source of gender and animacy).
func (s *Service) Adjective(adj, noun string, c russian.Case, n russian.Number) (string, error) {
	a, err := s.store.Adjective(adj)
	if err != nil {
		return "", err
	}
	nn, err := s.store.Noun(noun)
	if err != nil {
		return "", err
	}
	return a.Form(c, n, nn)
}

// Pronoun declines the pronoun stored under pron, agreeing with the
// noun stored under noun.
func (s *Service) Pronoun(pron, noun string, c russian.Case, n russian.Number) (string, error) {
	p, err := s.store.Pronoun(pron)
	if err != nil {
		return "", err
	}
	nn, err := s.store.Noun(noun)
	if err != nil {
		return "", err
	}
	return p.Form(c, n, nn)
}

// Phrase declines an agreeing pair: agree may be an adjective or a
// pronoun key, tried in that order.
func (s *Service) Phrase(agree, noun string, c russian.Case, n russian.Number) (string, error) {
	nn, err := s.store.Noun(noun)
	if err != nil {
		return "", err
	}
	nf, err := nn.Form(c, n)
	if err != nil {
		return "", err
	}

	var af string
	if a, aerr := s.store.Adjective(agree); aerr == nil {
		af, err = a.Form(c, n, nn)
	} else if p, perr := s.store.Pronoun(agree); perr == nil {
		af, err = p.Form(c, n, nn)
	} else {
		return "", aerr
	}
	if err != nil {
		return "", err
	}

	return af + " " + nf, nil
}

func (s *Service) RandomNoun() *russian.Noun {
	return s.store.RandomNoun(s.rnd)
}

func (s *Service) RandomAdjective() *russian.Adjective {
	return s.store.RandomAdjective(s.rnd)
}

func (s *Service) RandomPronoun() *russian.Pronoun {
	return s.store.RandomPronoun(s.rnd)
}

// DeclineRandomNoun picks a noun and declines it; the canonical form
// comes back with the inflected one.
func (s *Service) DeclineRandomNoun(c russian.Case, n russian.Number) (word, form string, err error) {
	noun := s.store.RandomNoun(s.rnd)
	form, err = noun.Form(c, n)
	return noun.Word, form, err
}

// DeclineRandomAdjective picks an adjective and declines it against the
// given noun.
func (s *Service) DeclineRandomAdjective(noun string, c russian.Case, n russian.Number) (word, form string, err error) {
	nn, err := s.store.Noun(noun)
	if err != nil {
		return "", "", err
	}
	a := s.store.RandomAdjective(s.rnd)
	form, err = a.Form(c, n, nn)
	return a.Word, form, err
}

// DeclineRandomPronoun picks a pronoun and declines it against the
// given noun.
func (s *Service) DeclineRandomPronoun(noun string, c russian.Case, n russian.Number) (word, form string, err error) {
	nn, err := s.store.Noun(noun)
	if err != nil {
		return "", "", err
	}
	p := s.store.RandomPronoun(s.rnd)
	form, err = p.Form(c, n, nn)
	return p.Word, form, err
}

// RandomPhrase builds a declined pronoun+adjective+noun phrase for
// drills, e.g. "нашего нового друга".
func (s *Service) RandomPhrase(c russian.Case, n russian.Number) (string, error) {
	noun := s.store.RandomNoun(s.rnd)
	adj := s.store.RandomAdjective(s.rnd)
	pron := s.store.RandomPronoun(s.rnd)

	nf, err := noun.Form(c, n)
	if err != nil {
		return "", err
	}
	af, err := adj.Form(c, n, noun)
	if err != nil {
		return "", err
	}
	pf, err := pron.Form(c, n, noun)
	if err != nil {
		return "", err
	}

	return pf + " " + af + " " + nf, nil
}

// SelectNouns returns the keys of all nouns satisfying keep, e.g. all
// feminine or all animate nouns.
func (s *Service) SelectNouns(keep func(*russian.Noun) bool) []string {
	return s.store.SelectNouns(keep)
}

// SelectAdjectives returns the keys of all adjectives satisfying keep.
func (s *Service) SelectAdjectives(keep func(*russian.Adjective) bool) []string {
	return s.store.SelectAdjectives(keep)
}

// SelectPronouns returns the keys of all pronouns satisfying keep.
func (s *Service) SelectPronouns(keep func(*russian.Pronoun) bool) []string {
	return s.store.SelectPronouns(keep)
}

// Stem returns the sentence stem for c.
func (s *Service) Stem(c russian.Case) (russian.Stem, error) {
	return s.store.Stem(c)
}
