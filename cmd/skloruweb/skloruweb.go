package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"image/color"
	"image/png"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/frizinak/gotls/simplehttp"
	"github.com/frizinak/gotls/tls"
	"github.com/frizinak/skloru/common"
	"github.com/frizinak/skloru/image"
	"github.com/frizinak/skloru/lexicon"
	"github.com/frizinak/skloru/russian"
	"github.com/rs/cors"
	"github.com/tdewolff/minify/v2/js"
)

var (
	imgFG = color.NRGBA{255, 255, 255, 255}
	imgBG = color.NRGBA{0, 0, 0, 0}
)

type Config struct {
	CardCacheDir string
}

type App struct {
	conf Config
	font []byte
	cors *cors.Cors

	homeTpl   *template.Template
	resultTpl *template.Template
}

func (app *App) route(r *http.Request, l *log.Logger) (simplehttp.HandleFunc, int) {
	p := strings.Trim(r.URL.Path, "/")
	r.URL.Path = p

	switch p {
	case "":
		return app.handleHome, 0
	case "api/decline":
		return app.handleAPIDecline, 0
	case "api/drill":
		return app.handleAPIDrill, 0
	case "api/words":
		return app.handleAPIWords, 0
	}

	switch {
	case strings.HasPrefix(p, "d/") && strings.Count(p, "/") >= 3:
		return app.handleDecline, 0
	case strings.HasPrefix(p, "card/") && strings.Count(p, "/") == 3:
		return app.handleCard, 0
	}

	return nil, 0
}

func (app *App) cache(path string, w io.Writer, generate func(w io.Writer) (int64, error)) (int64, error) {
	f, err := os.Open(path)
	if err == nil {
		n, err := io.Copy(w, f)
		f.Close()
		return n, err
	}

	if os.IsNotExist(err) {
		tmp := fmt.Sprintf("%s.%d.tmp", path, time.Now().UnixNano())
		f, err := os.Create(tmp)
		if err != nil {
			return 0, err
		}
		rw := io.MultiWriter(f, w)
		n, err := generate(rw)
		f.Close()
		if err != nil {
			os.Remove(tmp)
			return n, err
		}
		os.Rename(tmp, path)
		return n, nil
	}

	return 0, err
}

type stemJSON struct {
	Russian string `json:"russian"`
	English string `json:"english"`
}

type formJSON struct {
	Word        string `json:"word"`
	Form        string `json:"form"`
	Translation string `json:"translation,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Animacy     string `json:"animacy,omitempty"`
}

type declineJSON struct {
	Case   string     `json:"case"`
	Number string     `json:"number"`
	Phrase string     `json:"phrase"`
	Stem   *stemJSON  `json:"stem,omitempty"`
	Forms  []formJSON `json:"forms"`
}

type errJSON struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func toJSON(res common.Result) declineJSON {
	d := declineJSON{
		Case:   res.Case.String(),
		Number: res.Number.String(),
		Phrase: res.Phrase,
		Forms:  make([]formJSON, 0, len(res.Entries)),
	}
	if res.StemRu != "" {
		d.Stem = &stemJSON{Russian: res.StemRu, English: res.StemEn}
	}
	for _, e := range res.Entries {
		f := formJSON{Word: e.Word, Form: e.Form, Translation: e.Translation}
		if e.Gender != 0 {
			f.Gender = e.Gender.String()
		}
		if e.Animacy != 0 {
			f.Animacy = e.Animacy.String()
		}
		d.Forms = append(d.Forms, f)
	}
	return d
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) (int, error) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	return 0, json.NewEncoder(w).Encode(v)
}

func (app *App) apiErr(w http.ResponseWriter, err error) (int, error) {
	status := http.StatusInternalServerError
	e := errJSON{Error: err.Error()}

	var nf *lexicon.NotFoundError
	switch {
	case errors.As(err, &nf):
		status = http.StatusNotFound
		store, serr := common.GetStore()
		if serr == nil && nf.Kind == "noun" {
			e.Suggestions = store.SuggestNouns(nf.Key, 3)
		}
	case errors.Is(err, russian.ErrUnknownCase),
		errors.Is(err, russian.ErrUnknownNumber):
		status = http.StatusBadRequest
	}

	return writeJSON(w, status, e)
}

func params(r *http.Request) (russian.Case, russian.Number, error) {
	q := r.URL.Query()
	c, n := russian.Nominative, russian.Singular
	var err error
	if v := q.Get("case"); v != "" {
		if c, err = russian.ParseCase(v); err != nil {
			return c, n, err
		}
	}
	if v := q.Get("number"); v != "" {
		if n, err = russian.ParseNumber(v); err != nil {
			return c, n, err
		}
	}
	return c, n, nil
}

func (app *App) handleAPIDecline(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	app.cors.HandlerFunc(w, r)
	if r.Method == http.MethodOptions {
		return 0, nil
	}

	c, n, err := params(r)
	if err != nil {
		return app.apiErr(w, err)
	}
	q := r.URL.Query()
	noun := q.Get("noun")
	if noun == "" {
		return writeJSON(w, http.StatusBadRequest, errJSON{Error: "missing 'noun' query parameter"})
	}
	var agree []string
	if v := q.Get("agree"); v != "" {
		agree = strings.Fields(strings.ReplaceAll(v, ",", " "))
	}

	store, err := common.GetStore()
	if err != nil {
		return 0, err
	}
	res, err := common.BuildResult(store, c, n, noun, agree, q.Get("stem") != "")
	if err != nil {
		return app.apiErr(w, err)
	}

	return writeJSON(w, http.StatusOK, toJSON(res))
}

func (app *App) handleAPIDrill(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	app.cors.HandlerFunc(w, r)
	if r.Method == http.MethodOptions {
		return 0, nil
	}

	c, n, err := params(r)
	if err != nil {
		return app.apiErr(w, err)
	}

	svc, err := common.GetService()
	if err != nil {
		return 0, err
	}
	phrase, err := svc.RandomPhrase(c, n)
	if err != nil {
		return 0, err
	}
	stem, err := svc.Stem(c)
	if err != nil {
		return app.apiErr(w, err)
	}

	return writeJSON(w, http.StatusOK, declineJSON{
		Case:   c.String(),
		Number: n.String(),
		Phrase: phrase,
		Stem:   &stemJSON{Russian: stem.Russian, English: stem.English},
	})
}

func (app *App) handleAPIWords(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	app.cors.HandlerFunc(w, r)
	if r.Method == http.MethodOptions {
		return 0, nil
	}

	store, err := common.GetStore()
	if err != nil {
		return 0, err
	}

	q := r.URL.Query()
	kind := q.Get("kind")
	if kind == "" {
		kind = "nouns"
	}

	var keys []string
	switch kind {
	case "adjectives":
		keys = store.Adjectives()
	case "pronouns":
		keys = store.Pronouns()
	case "nouns":
		g := russian.Gender(0)
		a := russian.Animacy(0)
		if v := q.Get("gender"); v != "" {
			switch v {
			case "m":
				g = russian.M
			case "f":
				g = russian.F
			case "n":
				g = russian.N
			default:
				return writeJSON(w, http.StatusBadRequest, errJSON{Error: "gender must be m, f or n"})
			}
		}
		if v := q.Get("animacy"); v != "" {
			switch v {
			case "animate":
				a = russian.Animate
			case "inanimate":
				a = russian.Inanimate
			default:
				return writeJSON(w, http.StatusBadRequest, errJSON{Error: "animacy must be animate or inanimate"})
			}
		}
		keys = store.SelectNouns(func(n *russian.Noun) bool {
			return (g == 0 || n.Gender == g) && (a == 0 || n.Animacy == a)
		})
	default:
		return writeJSON(w, http.StatusBadRequest, errJSON{Error: "kind must be nouns, adjectives or pronouns"})
	}

	return writeJSON(w, http.StatusOK, map[string][]string{"words": keys})
}

func (app *App) handleHome(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	w.Header().Set("content-type", "text/html")
	return 0, app.homeTpl.Execute(w, nil)
}

func (app *App) handleDecline(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	p := strings.Split(r.URL.Path, "/")
	c, err := russian.ParseCase(p[1])
	if err != nil {
		return http.StatusNotFound, nil
	}
	n, err := russian.ParseNumber(p[2])
	if err != nil {
		return http.StatusNotFound, nil
	}
	noun := p[3]
	agree := p[4:]

	store, err := common.GetStore()
	if err != nil {
		return 0, err
	}
	res, err := common.BuildResult(store, c, n, noun, agree, true)
	if err != nil {
		var nf *lexicon.NotFoundError
		if errors.As(err, &nf) {
			return http.StatusNotFound, nil
		}
		return 0, err
	}

	w.Header().Set("content-type", "text/html")
	return 0, app.resultTpl.Execute(w, res)
}

func (app *App) handleCard(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
	if app.font == nil {
		return http.StatusNotFound, nil
	}

	p := strings.Split(r.URL.Path, "/")
	if !strings.HasSuffix(p[3], ".png") {
		return http.StatusNotFound, nil
	}
	c, err := russian.ParseCase(p[1])
	if err != nil {
		return http.StatusNotFound, nil
	}
	n, err := russian.ParseNumber(p[2])
	if err != nil {
		return http.StatusNotFound, nil
	}
	word := strings.TrimSuffix(p[3], ".png")

	store, err := common.GetStore()
	if err != nil {
		return 0, err
	}
	noun, err := store.Noun(word)
	if err != nil {
		return http.StatusNotFound, nil
	}
	form, err := noun.Form(c, n)
	if err != nil {
		return 0, err
	}

	h := w.Header()
	h.Set("content-type", "image/png")
	h.Set("cache-control", "max-age=86400")

	fp := filepath.Join(app.conf.CardCacheDir, fmt.Sprintf("%s-%s-%s", c, n, word))
	_, err = app.cache(fp, w, func(w io.Writer) (int64, error) {
		img, err := image.Card(300, form, noun.Translation, imgFG, imgBG, app.font)
		if err != nil {
			return 0, err
		}

		return -1, png.Encode(w, img)
	})

	return 0, err
}

const appJS = `
(function () {
	var form = document.querySelector('form');
	var out = document.querySelector('.results');
	form.addEventListener('submit', function (ev) {
		ev.preventDefault();
		var words = form.querySelector('.val').value.trim().split(/\s+/);
		if (!words.length) {
			return;
		}
		var noun = words.pop();
		var q = '/api/decline?stem=1' +
			'&case=' + encodeURIComponent(form.querySelector('.case').value) +
			'&number=' + encodeURIComponent(form.querySelector('.number').value) +
			'&noun=' + encodeURIComponent(noun) +
			'&agree=' + encodeURIComponent(words.join(' '));
		fetch(q).then(function (res) { return res.json(); }).then(function (d) {
			if (d.error) {
				out.textContent = d.error +
					(d.suggestions ? ' (did you mean: ' + d.suggestions.join(', ') + ')' : '');
				return;
			}
			var h = '<h2>' + d.case + ' ' + d.number + '</h2>';
			h += '<p class="stem">' + (d.stem ? d.stem.russian + ' ' : '') +
				'<b>' + d.phrase + '</b>' +
				(d.stem ? ' <i>(' + d.stem.english + ' ...)</i>' : '') + '</p>';
			h += '<table>';
			d.forms.forEach(function (f) {
				h += '<tr><td>' + f.form + '</td><td>[' + f.word + ']</td><td>' +
					(f.translation || '') + '</td></tr>';
			});
			h += '</table>';
			out.innerHTML = h;
		});
	});
})();
`

func minifyJS(src string) (string, error) {
	buf := bytes.NewBuffer(nil)
	err := js.DefaultMinifier.Minify(nil, buf, strings.NewReader(src), nil)
	return buf.String(), err
}

func main() {
	var addr string
	var cacheDir string
	var fontPath string
	flag.StringVar(&addr, "l", ":80", "address to bind to")
	flag.StringVar(&cacheDir, "c", "", "cache dir, defaults to <XDG default>/skloru")
	flag.StringVar(&fontPath, "font", "", "otf/ttf with cyrillic glyphs, enables /card/ rendering")
	flag.Parse()

	if cacheDir == "" {
		_cacheDir, err := os.UserCacheDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "please specify a cache dir (-c) as we could not find a default directory: %s\n", err)
			os.Exit(1)
		}
		cacheDir = filepath.Join(_cacheDir, "skloru")
	}

	var font []byte
	if fontPath != "" {
		var err error
		font, err = os.ReadFile(fontPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not read font %s: %s\n", fontPath, err)
			os.Exit(1)
		}
	}

	script, err := minifyJS(appJS)
	if err != nil {
		panic(err)
	}

	mtpl, err := common.GetHTMLTpl()
	if err != nil {
		panic(err)
	}

	tpl := template.Must(template.Must(mtpl.Clone()).Parse(`
{{- define "header" -}}
<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>{{ . }}</title>
	<style>
		*          { padding: 0; margin: 0; box-sizing: border-box; }
		html, body { background-color: #151515; color: #fff; }
		main       { max-width: 900px; width: 95%; margin: 20px auto 0 auto; }
		.results   { margin-top: 40px; }
		td         { padding: 10px 20px 10px 0; }
		h2         { margin-bottom: 10px; }
		.stem i    { color: #aaa; }
		form input, form select { min-height: 2em; font-size: 1.2em; background-color: #333; color: #fff; outline: none; border: 1px solid #ccc; padding: 10px; }
		form .val  { width: 50%; }
	</style>
</head>
<body>
<main>
{{- end -}}

{{- define "footer" -}}
</main>
</body>
</html>
{{- end -}}`))

	homeTpl := template.Must(template.Must(tpl.Clone()).Parse(`
{{- template "header" "skloru" }}
<form>
<input type="text" class="val" placeholder="наш новый друг" />
<select class="case">
<option value="nom">nominative</option>
<option value="gen">genitive</option>
<option value="acc">accusative</option>
<option value="dat">dative</option>
<option value="inst">instrumental</option>
<option value="prep">prepositional</option>
</select>
<select class="number">
<option value="sg">singular</option>
<option value="pl">plural</option>
</select>
<input type="submit" value=">" />
</form>
<div class="results"></div>
<script>` + script + `</script>
{{ template "footer" }}`))

	resultTpl := template.Must(template.Must(tpl.Clone()).Parse(`
{{- template "header" .Phrase }}
<div class="results">
{{ template "result" . }}
</div>
{{ template "footer" }}`))

	errTpl := template.Must(template.Must(tpl.Clone()).Parse(`
{{- template "header" "Error" }}
	{{ . }}
{{ template "footer" }}`))

	cardCacheDir := filepath.Join(cacheDir, "card")
	os.MkdirAll(cardCacheDir, 0700)

	l := log.New(os.Stderr, "", log.Ldate|log.Ltime)
	app := &App{
		conf: Config{
			CardCacheDir: cardCacheDir,
		},
		font:      font,
		cors:      cors.AllowAll(),
		homeTpl:   homeTpl,
		resultTpl: resultTpl,
	}
	s := tls.New(app.route, l)

	buf := bytes.NewBuffer(nil)
	for i := 300; i <= 500; i++ {
		buf.Reset()
		errstr := http.StatusText(i)
		if errstr == "" {
			errstr = "Something went wrong"
		}
		if err := errTpl.Execute(buf, fmt.Sprintf("%d - %s", i, errstr)); err != nil {
			panic(err)
		}
		b := make([]byte, buf.Len())
		copy(b, buf.Bytes())
		s.SetHTTPErrorHandler(i, simplehttp.NewHTTPError("text/html", b))
	}

	l.Fatal(s.Start(addr, false))
}
