package russian

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCase   = errors.New("unknown case")
	ErrUnknownNumber = errors.New("unknown number")

	// ErrInvalidGender and ErrInvalidAnimacy mean a stored attribute
	// fell outside its closed set: corrupt data, not caller error.
	ErrInvalidGender  = errors.New("invalid gender")
	ErrInvalidAnimacy = errors.New("invalid animacy")
)

// Form returns the stored form for c.
func (d Declension) Form(c Case) string {
	switch c {
	case Nominative:
		return d.Nom
	case Genitive:
		return d.Gen
	case Accusative:
		return d.Acc
	case Dative:
		return d.Dat
	case Instrumental:
		return d.Inst
	case Prepositional:
		return d.Prep
	}
	return ""
}

// Form resolves the inflected form of n for the given case and number.
//
// The only indirection is the plural accusative, which has no cell of
// its own: animates borrow the genitive, inanimates the nominative.
// The singular accusative is a stored cell for nouns.
func (n *Noun) Form(c Case, num Number) (string, error) {
	if c >= caseCount {
		return "", fmt.Errorf("%w: %d", ErrUnknownCase, c)
	}
	if num == Singular {
		return n.Singular.Form(c), nil
	}
	if c != Accusative {
		return n.Plural.Form(c), nil
	}
	switch n.Animacy {
	case Animate:
		return n.Plural.Gen, nil
	case Inanimate:
		return n.Plural.Nom, nil
	}
	return "", fmt.Errorf("%w: %s: %d", ErrInvalidAnimacy, n.Word, n.Animacy)
}

// Form resolves the form agreeing with a noun of the given gender and
// animacy.
//
// Plural forms are gender-invariant; the plural accusative borrows the
// genitive cell when the noun is animate, the nominative cell when
// inanimate. In the singular:
//   - masculine accusative borrows genitive or nominative the same way;
//   - feminine genitive, dative, instrumental and prepositional all
//     read the single FemOblique cell;
//   - neuter nominative and accusative read NeutNom (neuter nouns are
//     inanimate, the two never diverge), every other neuter case reads
//     the masculine cells.
func (f *AgreementForms) Form(c Case, num Number, g Gender, a Animacy) (string, error) {
	if c >= caseCount {
		return "", fmt.Errorf("%w: %d", ErrUnknownCase, c)
	}
	if num == Plural {
		return f.plural(c, a)
	}

	switch g {
	case M:
		return f.masculine(c, a)
	case F:
		switch c {
		case Nominative:
			return f.FemNom, nil
		case Accusative:
			return f.FemAcc, nil
		}
		return f.FemOblique, nil
	case N:
		switch c {
		case Nominative, Accusative:
			return f.NeutNom, nil
		}
		return f.masculine(c, Inanimate)
	}

	return "", fmt.Errorf("%w: %d", ErrInvalidGender, g)
}

func (f *AgreementForms) plural(c Case, a Animacy) (string, error) {
	switch c {
	case Nominative:
		return f.PlNom, nil
	case Genitive:
		return f.PlGen, nil
	case Accusative:
		switch a {
		case Animate:
			return f.PlGen, nil
		case Inanimate:
			return f.PlNom, nil
		}
		return "", fmt.Errorf("%w: %d", ErrInvalidAnimacy, a)
	case Dative:
		return f.PlDat, nil
	case Instrumental:
		return f.PlInst, nil
	case Prepositional:
		return f.PlPrep, nil
	}
	return "", fmt.Errorf("%w: %d", ErrUnknownCase, c) // unreachable, c was checked
}

func (f *AgreementForms) masculine(c Case, a Animacy) (string, error) {
	switch c {
	case Nominative:
		return f.MascNom, nil
	case Genitive:
		return f.MascGen, nil
	case Accusative:
		switch a {
		case Animate:
			return f.MascGen, nil
		case Inanimate:
			return f.MascNom, nil
		}
		return "", fmt.Errorf("%w: %d", ErrInvalidAnimacy, a)
	case Dative:
		return f.MascDat, nil
	case Instrumental:
		return f.MascInst, nil
	case Prepositional:
		return f.MascPrep, nil
	}
	return "", fmt.Errorf("%w: %d", ErrUnknownCase, c) // unreachable, c was checked
}

// Form resolves the adjective form agreeing with n.
func (a *Adjective) Form(c Case, num Number, n *Noun) (string, error) {
	return a.Forms.Form(c, num, n.Gender, n.Animacy)
}

// Form resolves the pronoun form agreeing with n.
func (p *Pronoun) Form(c Case, num Number, n *Noun) (string, error) {
	return p.Forms.Form(c, num, n.Gender, n.Animacy)
}
