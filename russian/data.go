// Package russian holds the grammatical types of the lexicon and the
// rules that pick a stored inflected form for a grammatical context.
package russian

import (
	"fmt"
	"strings"
)

// Case is one of the six Russian grammatical cases.
// The zero value is Nominative.
type Case uint8

func (c Case) String() string { return allCasesRev[c] }

const (
	Nominative Case = iota
	Genitive
	Accusative
	Dative
	Instrumental
	Prepositional
	caseCount
)

// Cases lists all six cases in traditional order.
var Cases = [...]Case{
	Nominative,
	Genitive,
	Accusative,
	Dative,
	Instrumental,
	Prepositional,
}

var allCases = map[string]Case{
	"nominative":    Nominative,
	"nom":           Nominative,
	"genitive":      Genitive,
	"gen":           Genitive,
	"accusative":    Accusative,
	"acc":           Accusative,
	"dative":        Dative,
	"dat":           Dative,
	"instrumental":  Instrumental,
	"inst":          Instrumental,
	"prepositional": Prepositional,
	"prep":          Prepositional,
}

var allCasesRev = map[Case]string{
	Nominative:    "nominative",
	Genitive:      "genitive",
	Accusative:    "accusative",
	Dative:        "dative",
	Instrumental:  "instrumental",
	Prepositional: "prepositional",
}

// ParseCase maps a case name (or its usual abbreviation) onto a Case.
// Anything outside the six-case set is an error, never a default.
func ParseCase(s string) (Case, error) {
	if v, ok := allCases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCase, s)
}

// Number distinguishes singular from plural.
// The zero value is Singular.
type Number uint8

func (n Number) String() string { return allNumbersRev[n] }

const (
	Singular Number = iota
	Plural
)

var allNumbers = map[string]Number{
	"singular": Singular,
	"sg":       Singular,
	"plural":   Plural,
	"pl":       Plural,
}

var allNumbersRev = map[Number]string{
	Singular: "singular",
	Plural:   "plural",
}

// ParseNumber maps a number name or abbreviation onto a Number.
func ParseNumber(s string) (Number, error) {
	if v, ok := allNumbers[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNumber, s)
}

// Gender is a stored attribute of a noun, never caller input.
// The zero value is invalid so unset data cannot pass for masculine.
type Gender uint8

func (g Gender) String() string { return allGendersRev[g] }

const (
	M Gender = 1 + iota
	F
	N
)

var allGenders = map[string]Gender{
	"m": M,
	"f": F,
	"n": N,
}

var allGendersRev = map[Gender]string{
	M: "masculine",
	F: "feminine",
	N: "neuter",
}

func gender(s string) Gender {
	return allGenders[strings.ToLower(strings.TrimSpace(s))]
}

// Animacy is a stored attribute of a noun; it decides which cell the
// accusative borrows from.
// The zero value is invalid.
type Animacy uint8

func (a Animacy) String() string { return allAnimaciesRev[a] }

const (
	Animate Animacy = 1 + iota
	Inanimate
)

var allAnimacies = map[string]Animacy{
	"animate":   Animate,
	"anim":      Animate,
	"inanimate": Inanimate,
	"inan":      Inanimate,
}

var allAnimaciesRev = map[Animacy]string{
	Animate:   "animate",
	Inanimate: "inanimate",
}

func animacy(s string) Animacy {
	return allAnimacies[strings.ToLower(strings.TrimSpace(s))]
}

// Declension stores one inflected form per case.
type Declension struct {
	Nom  string
	Gen  string
	Dat  string
	Acc  string
	Inst string
	Prep string
}

// Noun is keyed by Word, its nominative-singular form.
type Noun struct {
	Word        string
	Gender      Gender
	Animacy     Animacy
	Translation string
	Singular    Declension
	Plural      Declension
}

func (n *Noun) String() string {
	return fmt.Sprintf("%s %s %s", n.Word, n.Gender, n.Animacy)
}

// AgreementForms holds every cell an adjective or pronoun paradigm can
// resolve to. Masculine and neuter share the oblique cells; the
// feminine oblique cases share a single cell; the plural is
// gender-invariant. Neither the masculine singular nor the plural
// stores an accusative: both borrow genitive or nominative by animacy.
type AgreementForms struct {
	MascNom  string
	MascGen  string
	MascDat  string
	MascInst string
	MascPrep string

	FemNom     string
	FemAcc     string
	FemOblique string

	NeutNom string

	PlNom  string
	PlGen  string
	PlDat  string
	PlInst string
	PlPrep string
}

// Adjective is keyed by Word, its masculine-nominative-singular form.
type Adjective struct {
	Word        string
	Translation string
	Forms       AgreementForms
}

// Pronoun is keyed by Word, its masculine-nominative-singular form.
type Pronoun struct {
	Word        string
	Translation string
	Forms       AgreementForms
}

// Stem is the fixed-verb sentence opening appropriate to a case.
type Stem struct {
	Case    Case
	Russian string
	English string
}

// Lexicon bundles the four decoded collections; it is what the gob
// codec ships and what the store is built from.
type Lexicon struct {
	Nouns      []Noun
	Adjectives []Adjective
	Pronouns   []Pronoun
	Stems      []Stem
}
