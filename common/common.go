// Package common wires the embedded lexicon into a shared store and
// holds the templates the commands render with.
package common

import (
	"bytes"
	"fmt"
	htmltpl "html/template"
	"strings"
	"text/template"

	"github.com/frizinak/skloru/data"
	"github.com/frizinak/skloru/decline"
	"github.com/frizinak/skloru/lexicon"
	"github.com/frizinak/skloru/russian"
)

// Entry is one declined word ready for rendering.
type Entry struct {
	Word        string
	Form        string
	Translation string
	Gender      russian.Gender
	Animacy     russian.Animacy
}

// Result is what the CLI and web templates consume.
type Result struct {
	Case    russian.Case
	Number  russian.Number
	StemRu  string
	StemEn  string
	Phrase  string
	Entries []Entry
}

// BuildResult declines noun and its agreeing adjectives/pronouns and
// packs everything a template needs. Agreeing words may be adjective or
// pronoun keys, tried in that order.
func BuildResult(
	store *lexicon.Store,
	c russian.Case,
	num russian.Number,
	noun string,
	agree []string,
	stem bool,
) (Result, error) {
	res := Result{Case: c, Number: num}

	n, err := store.Noun(noun)
	if err != nil {
		return res, err
	}
	nf, err := n.Form(c, num)
	if err != nil {
		return res, err
	}

	forms := make([]string, 0, len(agree)+1)
	for _, word := range agree {
		var f, trans string
		if a, aerr := store.Adjective(word); aerr == nil {
			trans = a.Translation
			f, err = a.Form(c, num, n)
		} else if p, perr := store.Pronoun(word); perr == nil {
			trans = p.Translation
			f, err = p.Form(c, num, n)
		} else {
			return res, aerr
		}
		if err != nil {
			return res, err
		}
		forms = append(forms, f)
		res.Entries = append(res.Entries, Entry{Word: word, Form: f, Translation: trans})
	}

	forms = append(forms, nf)
	res.Phrase = strings.Join(forms, " ")
	res.Entries = append(res.Entries, Entry{
		Word:        n.Word,
		Form:        nf,
		Translation: n.Translation,
		Gender:      n.Gender,
		Animacy:     n.Animacy,
	})

	if stem {
		st, err := store.Stem(c)
		if err != nil {
			return res, err
		}
		res.StemRu, res.StemEn = st.Russian, st.English
	}

	return res, nil
}

const tplStr = `{{- define "entry" -}}
{{ clrGreen }}{{ .Form }}{{ clrPop }} [{{ .Word }}]
{{- if .Gender }} {{ genderSymbol .Gender }}{{ end }}
{{- if .Translation }} {{ clrGray }}{{ .Translation }}{{ clrPop }}{{ end }}
{{- end -}}

{{- define "result" -}}
{{ clrCyan }}{{ .Case }} {{ .Number }}{{ clrPop }}
{{ if .StemRu }}{{ .StemRu }} {{ clrYellow }}{{ .Phrase }}{{ clrPop }} ({{ .StemEn }} ...)
{{ else }}{{ clrYellow }}{{ .Phrase }}{{ clrPop }}
{{ end -}}
{{- range .Entries }}  {{ template "entry" . }}
{{ end -}}
{{- end -}}

{{- range . }}{{ template "result" . }}
{{ end }}`

var (
	store   *lexicon.Store
	service *decline.Service
	tpl     *template.Template
	httpl   *htmltpl.Template
)

// GetStore decodes the embedded TSV lexicon once and memoizes it.
func GetStore() (*lexicon.Store, error) {
	if store != nil {
		return store, nil
	}

	l, err := russian.DecodeLexicon(
		bytes.NewReader(data.Nouns),
		bytes.NewReader(data.Adjectives),
		bytes.NewReader(data.Pronouns),
		bytes.NewReader(data.Stems),
	)
	if err != nil {
		return nil, err
	}

	store, err = lexicon.New(l)
	return store, err
}

// GetService returns a service over the embedded lexicon with a
// time-seeded picker.
func GetService() (*decline.Service, error) {
	if service != nil {
		return service, nil
	}

	s, err := GetStore()
	if err != nil {
		return nil, err
	}
	service = decline.New(s, nil)
	return service, nil
}

func getTplFuncs(colors bool) template.FuncMap {
	_clrs := make(clrs, 0)
	q := &_clrs
	mk := func(ansi int) func() fmt.Stringer {
		if !colors {
			return func() fmt.Stringer { return noClr{} }
		}
		return func() fmt.Stringer { return q.Get(ansi) }
	}
	pop := func() fmt.Stringer { return q.Pop() }
	if !colors {
		pop = func() fmt.Stringer { return noClr{} }
	}

	return template.FuncMap{
		"genderSymbol": func(g russian.Gender) string {
			switch g {
			case russian.N:
				return "⚲"
			case russian.F:
				return "♀"
			case russian.M:
				return "♂"
			}

			return "?"
		},
		"caseShort": func(c russian.Case) string {
			s := c.String()
			if len(s) > 4 {
				s = s[:4]
			}
			return s
		},
		"clrRed":    mk(31),
		"clrGreen":  mk(32),
		"clrYellow": mk(33),
		"clrBlue":   mk(34),
		"clrCyan":   mk(36),
		"clrGray":   mk(37),
		"clrPop":    pop,
	}
}

// GetTpl returns the CLI template, optionally with ANSI colors.
func GetTpl(colors bool) (*template.Template, error) {
	if tpl != nil {
		return tpl, nil
	}

	var err error
	tpl, err = template.New("tpls").Funcs(getTplFuncs(colors)).Parse(tplStr)

	return tpl, err
}

// GetHTMLTpl returns the shared web template base.
func GetHTMLTpl() (*htmltpl.Template, error) {
	if httpl != nil {
		return httpl, nil
	}

	var err error
	httpl, err = htmltpl.New("tpls").
		Funcs(htmltpl.FuncMap(getTplFuncs(false))).
		Parse(`{{- define "entry" -}}
<td class="form">{{ .Form }}</td>
<td class="word">{{ .Word }}</td>
<td class="gender">{{ if .Gender }}{{ genderSymbol .Gender }}{{ end }}</td>
<td class="trans">{{ .Translation }}</td>
{{- end -}}

{{- define "result" -}}
<h2>{{ .Case }} {{ .Number }}</h2>
{{ if .StemRu }}<p class="stem">{{ .StemRu }} <b>{{ .Phrase }}</b> <i>({{ .StemEn }} ...)</i></p>
{{ else }}<p class="stem"><b>{{ .Phrase }}</b></p>
{{ end -}}
<table>
{{- range .Entries }}
<tr>{{ template "entry" . }}</tr>
{{- end }}
</table>
{{- end -}}`)

	return httpl, err
}
