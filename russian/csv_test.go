package russian

import (
	"errors"
	"strings"
	"testing"
)

const nounTSV = `word	gender	animacy	translation	sg_nom	sg_gen	sg_dat	sg_acc	sg_inst	sg_prep	pl_nom	pl_gen	pl_dat	pl_acc	pl_inst	pl_prep
друг	m	animate	friend	друг	друга	другу	друга	другом	друге	друзья	друзей	друзьям	друзей	друзьями	друзьях
книга	f	inanimate	book	книга	книги	книге	книгу	книгой	книге	книги	книг	книгам	книги	книгами	книгах
`

const adjTSV = `word	translation	m_nom	m_gen	m_dat	m_inst	m_prep	f_nom	f_acc	f_obl	n_nom	pl_nom	pl_gen	pl_dat	pl_inst	pl_prep
новый	new	новый	нового	новому	новым	новом	новая	новую	новой	новое	новые	новых	новым	новыми	новых
`

func TestDecodeNouns(t *testing.T) {
	nouns, err := DecodeNouns(strings.NewReader(nounTSV))
	if err != nil {
		t.Fatal(err)
	}
	if len(nouns) != 2 {
		t.Fatalf("expected 2 nouns, got %d", len(nouns))
	}

	n := nouns[0]
	if n.Word != "друг" || n.Gender != M || n.Animacy != Animate {
		t.Errorf("unexpected noun: %+v", n)
	}
	if n.Singular.Inst != "другом" || n.Plural.Prep != "друзьях" {
		t.Errorf("unexpected forms: %+v", n)
	}
	if nouns[1].Gender != F || nouns[1].Animacy != Inanimate {
		t.Errorf("unexpected noun: %+v", nouns[1])
	}
}

func TestDecodeNounsDuplicate(t *testing.T) {
	tsv := nounTSV + "друг	m	animate	friend	друг	друга	другу	друга	другом	друге	друзья	друзей	друзьям	друзей	друзьями	друзьях\n"
	if _, err := DecodeNouns(strings.NewReader(tsv)); err == nil {
		t.Error("expected duplicate error")
	}
}

func TestDecodeNounsBadAttributes(t *testing.T) {
	bad := "word	gender	animacy	translation\nдруг	x	animate	friend\n"
	if _, err := DecodeNouns(strings.NewReader(bad)); !errors.Is(err, ErrInvalidGender) {
		t.Errorf("expected ErrInvalidGender, got %v", err)
	}

	bad = "word	gender	animacy	translation\nдруг	m	maybe	friend\n"
	if _, err := DecodeNouns(strings.NewReader(bad)); !errors.Is(err, ErrInvalidAnimacy) {
		t.Errorf("expected ErrInvalidAnimacy, got %v", err)
	}
}

func TestDecodeAdjectives(t *testing.T) {
	adjs, err := DecodeAdjectives(strings.NewReader(adjTSV))
	if err != nil {
		t.Fatal(err)
	}
	if len(adjs) != 1 {
		t.Fatalf("expected 1 adjective, got %d", len(adjs))
	}
	a := adjs[0]
	if a.Word != "новый" || a.Forms.FemOblique != "новой" || a.Forms.PlPrep != "новых" {
		t.Errorf("unexpected adjective: %+v", a)
	}
}

func TestDecodeStems(t *testing.T) {
	tsv := "case	russian	english\naccusative	Я вижу	I see\n"
	stems, err := DecodeStems(strings.NewReader(tsv))
	if err != nil {
		t.Fatal(err)
	}
	if len(stems) != 1 || stems[0].Case != Accusative || stems[0].Russian != "Я вижу" {
		t.Errorf("unexpected stems: %+v", stems)
	}

	bad := "case	russian	english\nvocative	О	O\n"
	if _, err := DecodeStems(strings.NewReader(bad)); !errors.Is(err, ErrUnknownCase) {
		t.Errorf("expected ErrUnknownCase, got %v", err)
	}

	dup := tsv + "acc	Я вижу	I see\n"
	if _, err := DecodeStems(strings.NewReader(dup)); err == nil {
		t.Error("expected duplicate error")
	}
}
