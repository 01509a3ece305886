package common

import (
	"testing"

	"github.com/frizinak/skloru/lexicon"
	"github.com/frizinak/skloru/russian"
)

var lex *lexicon.Store

func init() {
	var err error
	lex, err = GetStore()
	if err != nil {
		panic(err)
	}
}

func form(t *testing.T, n *russian.Noun, c russian.Case, num russian.Number) string {
	t.Helper()
	f, err := n.Form(c, num)
	if err != nil {
		t.Fatalf("%s %s %s: %s", n.Word, c, num, err)
	}
	if f == "" {
		t.Fatalf("%s %s %s: empty form", n.Word, c, num)
	}
	return f
}

func TestNominativeSingularIsCanonical(t *testing.T) {
	for _, key := range lex.Nouns() {
		n, _ := lex.Noun(key)
		if got := form(t, n, russian.Nominative, russian.Singular); got != key {
			t.Errorf("%s: nominative singular %q != key", key, got)
		}
	}
}

func TestAccusativeBorrowing(t *testing.T) {
	for _, key := range lex.Nouns() {
		n, _ := lex.Noun(key)

		accSg := form(t, n, russian.Accusative, russian.Singular)
		accPl := form(t, n, russian.Accusative, russian.Plural)

		if n.Gender == russian.M {
			exp := form(t, n, russian.Nominative, russian.Singular)
			if n.Animacy == russian.Animate {
				exp = form(t, n, russian.Genitive, russian.Singular)
			}
			if accSg != exp {
				t.Errorf("%s: accusative singular %q, want %q", key, accSg, exp)
			}
		}

		if n.Gender == russian.N {
			if nom := form(t, n, russian.Nominative, russian.Singular); accSg != nom {
				t.Errorf("%s: neuter accusative %q != nominative %q", key, accSg, nom)
			}
		}

		exp := form(t, n, russian.Nominative, russian.Plural)
		if n.Animacy == russian.Animate {
			exp = form(t, n, russian.Genitive, russian.Plural)
		}
		if accPl != exp {
			t.Errorf("%s: accusative plural %q, want %q", key, accPl, exp)
		}
	}
}

func TestFeminineObliqueCollapse(t *testing.T) {
	fem := lex.SelectNouns(func(n *russian.Noun) bool { return n.Gender == russian.F })
	if len(fem) == 0 {
		t.Fatal("no feminine nouns in the lexicon")
	}
	n, _ := lex.Noun(fem[0])

	check := func(word string, f func(russian.Case, russian.Number, *russian.Noun) (string, error)) {
		gen, err := f(russian.Genitive, russian.Singular, n)
		if err != nil {
			t.Fatal(err)
		}
		for _, c := range []russian.Case{russian.Dative, russian.Instrumental, russian.Prepositional} {
			got, err := f(c, russian.Singular, n)
			if err != nil {
				t.Fatal(err)
			}
			if got != gen {
				t.Errorf("%s: feminine %s %q != genitive %q", word, c, got, gen)
			}
		}
	}

	for _, key := range lex.Adjectives() {
		a, _ := lex.Adjective(key)
		check(key, a.Form)
	}
	for _, key := range lex.Pronouns() {
		p, _ := lex.Pronoun(key)
		check(key, p.Form)
	}
}

func TestScenario(t *testing.T) {
	res, err := BuildResult(
		lex,
		russian.Accusative, russian.Singular,
		"друг", []string{"наш", "новый"},
		true,
	)
	if err != nil {
		t.Fatal(err)
	}

	if res.Phrase != "нашего нового друга" {
		t.Errorf("phrase: got %q, want %q", res.Phrase, "нашего нового друга")
	}
	if res.StemRu != "Я вижу" || res.StemEn != "I see" {
		t.Errorf("stem: got %q / %q", res.StemRu, res.StemEn)
	}
	if len(res.Entries) != 3 || res.Entries[2].Form != "друга" {
		t.Errorf("unexpected entries: %+v", res.Entries)
	}
}

func TestAllStemsPresent(t *testing.T) {
	for _, c := range russian.Cases {
		st, err := lex.Stem(c)
		if err != nil {
			t.Errorf("%s: %s", c, err)
			continue
		}
		if st.Russian == "" || st.English == "" {
			t.Errorf("%s: incomplete stem: %+v", c, st)
		}
	}
}

func TestAllCellsNonEmpty(t *testing.T) {
	for _, key := range lex.Nouns() {
		n, _ := lex.Noun(key)
		for _, c := range russian.Cases {
			form(t, n, c, russian.Singular)
			form(t, n, c, russian.Plural)
		}
	}

	check := func(word string, f func(russian.Case, russian.Number, *russian.Noun) (string, error)) {
		for _, nkey := range lex.Nouns() {
			n, _ := lex.Noun(nkey)
			for _, c := range russian.Cases {
				for _, num := range []russian.Number{russian.Singular, russian.Plural} {
					got, err := f(c, num, n)
					if err != nil {
						t.Fatalf("%s + %s %s %s: %s", word, nkey, c, num, err)
					}
					if got == "" {
						t.Errorf("%s + %s %s %s: empty form", word, nkey, c, num)
					}
				}
			}
		}
	}
	for _, key := range lex.Adjectives() {
		a, _ := lex.Adjective(key)
		check(key, a.Form)
	}
	for _, key := range lex.Pronouns() {
		p, _ := lex.Pronoun(key)
		check(key, p.Form)
	}
}

func BenchmarkBuildResult(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BuildResult(lex, russian.Accusative, russian.Singular, "друг", []string{"новый"}, true)
	}
}
