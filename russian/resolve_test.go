package russian

import (
	"errors"
	"testing"
)

var drug = Noun{
	Word:    "друг",
	Gender:  M,
	Animacy: Animate,
	Singular: Declension{
		Nom: "друг", Gen: "друга", Dat: "другу",
		Acc: "друга", Inst: "другом", Prep: "друге",
	},
	Plural: Declension{
		Nom: "друзья", Gen: "друзей", Dat: "друзьям",
		Acc: "друзей", Inst: "друзьями", Prep: "друзьях",
	},
}

var stol = Noun{
	Word:    "стол",
	Gender:  M,
	Animacy: Inanimate,
	Singular: Declension{
		Nom: "стол", Gen: "стола", Dat: "столу",
		Acc: "стол", Inst: "столом", Prep: "столе",
	},
	Plural: Declension{
		Nom: "столы", Gen: "столов", Dat: "столам",
		Acc: "столы", Inst: "столами", Prep: "столах",
	},
}

var noviy = AgreementForms{
	MascNom: "новый", MascGen: "нового", MascDat: "новому",
	MascInst: "новым", MascPrep: "новом",
	FemNom: "новая", FemAcc: "новую", FemOblique: "новой",
	NeutNom: "новое",
	PlNom:   "новые", PlGen: "новых", PlDat: "новым",
	PlInst: "новыми", PlPrep: "новых",
}

func TestNounForms(t *testing.T) {
	tests := []struct {
		noun *Noun
		c    Case
		n    Number
		exp  string
	}{
		{&drug, Nominative, Singular, "друг"},
		{&drug, Genitive, Singular, "друга"},
		{&drug, Accusative, Singular, "друга"},
		{&drug, Dative, Singular, "другу"},
		{&drug, Instrumental, Singular, "другом"},
		{&drug, Prepositional, Singular, "друге"},
		{&drug, Nominative, Plural, "друзья"},
		{&drug, Accusative, Plural, "друзей"},
		{&stol, Accusative, Singular, "стол"},
		{&stol, Accusative, Plural, "столы"},
		{&stol, Genitive, Plural, "столов"},
	}

	for _, d := range tests {
		got, err := d.noun.Form(d.c, d.n)
		if err != nil {
			t.Fatalf("%s %s %s: %s", d.noun.Word, d.c, d.n, err)
		}
		if got != d.exp {
			t.Errorf("%s %s %s: got %q, want %q", d.noun.Word, d.c, d.n, got, d.exp)
		}
	}
}

func TestNounPluralAccusativeBorrows(t *testing.T) {
	anim, _ := drug.Form(Accusative, Plural)
	gen, _ := drug.Form(Genitive, Plural)
	if anim != gen {
		t.Errorf("animate plural accusative %q != genitive %q", anim, gen)
	}

	inan, _ := stol.Form(Accusative, Plural)
	nom, _ := stol.Form(Nominative, Plural)
	if inan != nom {
		t.Errorf("inanimate plural accusative %q != nominative %q", inan, nom)
	}
}

func TestNounInvalidAnimacy(t *testing.T) {
	bad := drug
	bad.Animacy = 0
	if _, err := bad.Form(Accusative, Plural); !errors.Is(err, ErrInvalidAnimacy) {
		t.Errorf("expected ErrInvalidAnimacy, got %v", err)
	}
	// the animacy attribute only matters on the accusative path
	if _, err := bad.Form(Genitive, Plural); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAgreementMasculine(t *testing.T) {
	tests := []struct {
		c   Case
		n   Number
		a   Animacy
		exp string
	}{
		{Nominative, Singular, Animate, "новый"},
		{Accusative, Singular, Animate, "нового"},
		{Accusative, Singular, Inanimate, "новый"},
		{Genitive, Singular, Animate, "нового"},
		{Dative, Singular, Inanimate, "новому"},
		{Instrumental, Singular, Animate, "новым"},
		{Prepositional, Singular, Inanimate, "новом"},
		{Nominative, Plural, Animate, "новые"},
		{Accusative, Plural, Animate, "новых"},
		{Accusative, Plural, Inanimate, "новые"},
		{Instrumental, Plural, Animate, "новыми"},
	}

	for _, d := range tests {
		got, err := noviy.Form(d.c, d.n, M, d.a)
		if err != nil {
			t.Fatalf("%s %s %s: %s", d.c, d.n, d.a, err)
		}
		if got != d.exp {
			t.Errorf("%s %s %s: got %q, want %q", d.c, d.n, d.a, got, d.exp)
		}
	}
}

func TestAgreementFeminineObliqueCollapse(t *testing.T) {
	nom, _ := noviy.Form(Nominative, Singular, F, Inanimate)
	acc, _ := noviy.Form(Accusative, Singular, F, Inanimate)
	if nom != "новая" || acc != "новую" {
		t.Errorf("feminine nom/acc: got %q/%q", nom, acc)
	}

	for _, c := range []Case{Genitive, Dative, Instrumental, Prepositional} {
		got, err := noviy.Form(c, Singular, F, Inanimate)
		if err != nil {
			t.Fatal(err)
		}
		if got != "новой" {
			t.Errorf("feminine %s: got %q, want %q", c, got, "новой")
		}
	}
}

func TestAgreementNeuter(t *testing.T) {
	nom, _ := noviy.Form(Nominative, Singular, N, Inanimate)
	acc, _ := noviy.Form(Accusative, Singular, N, Inanimate)
	if nom != acc || nom != "новое" {
		t.Errorf("neuter nom/acc: got %q/%q, want новое", nom, acc)
	}

	// oblique neuter shares the masculine paradigm
	tests := map[Case]string{
		Genitive:      "нового",
		Dative:        "новому",
		Instrumental:  "новым",
		Prepositional: "новом",
	}
	for c, exp := range tests {
		got, _ := noviy.Form(c, Singular, N, Inanimate)
		if got != exp {
			t.Errorf("neuter %s: got %q, want %q", c, got, exp)
		}
	}
}

func TestAgreementInvalid(t *testing.T) {
	if _, err := noviy.Form(Nominative, Singular, 0, Animate); !errors.Is(err, ErrInvalidGender) {
		t.Errorf("expected ErrInvalidGender, got %v", err)
	}
	if _, err := noviy.Form(Nominative, Singular, 42, Animate); !errors.Is(err, ErrInvalidGender) {
		t.Errorf("expected ErrInvalidGender, got %v", err)
	}
	if _, err := noviy.Form(Accusative, Singular, M, 0); !errors.Is(err, ErrInvalidAnimacy) {
		t.Errorf("expected ErrInvalidAnimacy, got %v", err)
	}
	if _, err := noviy.Form(Accusative, Plural, M, 0); !errors.Is(err, ErrInvalidAnimacy) {
		t.Errorf("expected ErrInvalidAnimacy, got %v", err)
	}
	// animacy is irrelevant off the accusative path
	if _, err := noviy.Form(Genitive, Singular, M, 0); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseCase(t *testing.T) {
	for s, exp := range map[string]Case{
		"nominative": Nominative,
		"gen":        Genitive,
		"ACC":        Accusative,
		" dat ":      Dative,
		"inst":       Instrumental,
		"prep":       Prepositional,
	} {
		got, err := ParseCase(s)
		if err != nil {
			t.Fatalf("ParseCase(%q): %s", s, err)
		}
		if got != exp {
			t.Errorf("ParseCase(%q) = %s, want %s", s, got, exp)
		}
	}

	for _, s := range []string{"", "vocative", "accusativee", "7"} {
		if _, err := ParseCase(s); !errors.Is(err, ErrUnknownCase) {
			t.Errorf("ParseCase(%q): expected ErrUnknownCase, got %v", s, err)
		}
	}
}

func TestParseNumber(t *testing.T) {
	if n, err := ParseNumber("pl"); err != nil || n != Plural {
		t.Errorf("ParseNumber(pl) = %v, %v", n, err)
	}
	if _, err := ParseNumber("dual"); !errors.Is(err, ErrUnknownNumber) {
		t.Errorf("expected ErrUnknownNumber, got %v", err)
	}
}
