package russian

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// dec feeds every non-empty tab-separated line of r to row, first line
// (the header) included so row can skip it by number.
func dec(r io.Reader, row func(int, []string) error) error {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanLines)
	n := 0
	for s.Scan() {
		n++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		if err := row(n, strings.Split(line, "\t")); err != nil {
			return err
		}
	}
	return s.Err()
}

func pad(row []string, n int) []string {
	if len(row) == n {
		return row
	}
	r := make([]string, n)
	copy(r, row)
	return r
}

func declension(row []string) Declension {
	return Declension{
		Nom:  row[0],
		Gen:  row[1],
		Dat:  row[2],
		Acc:  row[3],
		Inst: row[4],
		Prep: row[5],
	}
}

// DecodeNouns parses the nouns TSV:
// word, gender, animacy, translation, 6 singular forms, 6 plural forms.
func DecodeNouns(r io.Reader) ([]Noun, error) {
	nouns := make([]Noun, 0, 64)
	seen := make(map[string]struct{}, 64)
	err := dec(r, func(n int, row []string) error {
		if n == 1 {
			return nil
		}
		row = pad(row, 16)

		nn := Noun{
			Word:        row[0],
			Gender:      gender(row[1]),
			Animacy:     animacy(row[2]),
			Translation: row[3],
			Singular:    declension(row[4:10]),
			Plural:      declension(row[10:16]),
		}
		if nn.Word == "" {
			return fmt.Errorf("empty noun on line %d", n)
		}
		if nn.Gender == 0 {
			return fmt.Errorf("%w: noun %q on line %d: %q", ErrInvalidGender, nn.Word, n, row[1])
		}
		if nn.Animacy == 0 {
			return fmt.Errorf("%w: noun %q on line %d: %q", ErrInvalidAnimacy, nn.Word, n, row[2])
		}
		if _, ok := seen[nn.Word]; ok {
			return fmt.Errorf("duplicate noun on line %d: %q", n, nn.Word)
		}
		seen[nn.Word] = struct{}{}
		nouns = append(nouns, nn)
		return nil
	})

	return nouns, err
}

func decodeAgreement(r io.Reader, kind string) ([]Adjective, error) {
	words := make([]Adjective, 0, 32)
	seen := make(map[string]struct{}, 32)
	err := dec(r, func(n int, row []string) error {
		if n == 1 {
			return nil
		}
		row = pad(row, 16)

		w := Adjective{
			Word:        row[0],
			Translation: row[1],
			Forms: AgreementForms{
				MascNom:    row[2],
				MascGen:    row[3],
				MascDat:    row[4],
				MascInst:   row[5],
				MascPrep:   row[6],
				FemNom:     row[7],
				FemAcc:     row[8],
				FemOblique: row[9],
				NeutNom:    row[10],
				PlNom:      row[11],
				PlGen:      row[12],
				PlDat:      row[13],
				PlInst:     row[14],
				PlPrep:     row[15],
			},
		}
		if w.Word == "" {
			return fmt.Errorf("empty %s on line %d", kind, n)
		}
		if _, ok := seen[w.Word]; ok {
			return fmt.Errorf("duplicate %s on line %d: %q", kind, n, w.Word)
		}
		seen[w.Word] = struct{}{}
		words = append(words, w)
		return nil
	})

	return words, err
}

// DecodeAdjectives parses the adjectives TSV:
// word, translation, masc nom/gen/dat/inst/prep, fem nom/acc/oblique,
// neut nom, pl nom/gen/dat/inst/prep.
func DecodeAdjectives(r io.Reader) ([]Adjective, error) {
	return decodeAgreement(r, "adjective")
}

// DecodePronouns parses the pronouns TSV; same layout as adjectives.
func DecodePronouns(r io.Reader) ([]Pronoun, error) {
	adjs, err := decodeAgreement(r, "pronoun")
	if err != nil {
		return nil, err
	}
	prons := make([]Pronoun, len(adjs))
	for i, a := range adjs {
		prons[i] = Pronoun{Word: a.Word, Translation: a.Translation, Forms: a.Forms}
	}
	return prons, nil
}

// DecodeStems parses the sentence-stem TSV: case, russian, english.
func DecodeStems(r io.Reader) ([]Stem, error) {
	stems := make([]Stem, 0, int(caseCount))
	seen := make(map[Case]struct{}, caseCount)
	err := dec(r, func(n int, row []string) error {
		if n == 1 {
			return nil
		}
		row = pad(row, 3)

		c, err := ParseCase(row[0])
		if err != nil {
			return fmt.Errorf("stem on line %d: %w", n, err)
		}
		if _, ok := seen[c]; ok {
			return fmt.Errorf("duplicate stem on line %d: %s", n, c)
		}
		seen[c] = struct{}{}
		stems = append(stems, Stem{Case: c, Russian: row[1], English: row[2]})
		return nil
	})

	return stems, err
}

// DecodeLexicon decodes all four collections.
func DecodeLexicon(nouns, adjectives, pronouns, stems io.Reader) (Lexicon, error) {
	var l Lexicon
	var err error
	if l.Nouns, err = DecodeNouns(nouns); err != nil {
		return l, err
	}
	if l.Adjectives, err = DecodeAdjectives(adjectives); err != nil {
		return l, err
	}
	if l.Pronouns, err = DecodePronouns(pronouns); err != nil {
		return l, err
	}
	if l.Stems, err = DecodeStems(stems); err != nil {
		return l, err
	}
	return l, nil
}
