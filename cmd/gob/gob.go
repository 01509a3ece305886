package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/frizinak/skloru/lexicon"
	"github.com/frizinak/skloru/russian"
)

func open(dir, name string) *os.File {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		panic(err)
	}
	return f
}

func main() {
	var dir string
	var out string
	flag.StringVar(&dir, "d", "temp", "directory containing nouns.tsv, adjectives.tsv, pronouns.tsv and stems.tsv")
	flag.StringVar(&out, "o", "data/db.gob", "output gob file")
	flag.Parse()

	nouns := open(dir, "nouns.tsv")
	adjectives := open(dir, "adjectives.tsv")
	pronouns := open(dir, "pronouns.tsv")
	stems := open(dir, "stems.tsv")

	l, err := russian.DecodeLexicon(nouns, adjectives, pronouns, stems)
	nouns.Close()
	adjectives.Close()
	pronouns.Close()
	stems.Close()
	if err != nil {
		panic(err)
	}

	// construct the store once so duplicate keys and broken paradigms
	// fail here, not at runtime
	if _, err := lexicon.New(l); err != nil {
		panic(err)
	}

	os.MkdirAll(filepath.Dir(out), 0700)
	if err := russian.StoreGOB(out, l); err != nil {
		panic(err)
	}

	fmt.Printf(
		"%s: %d nouns, %d adjectives, %d pronouns, %d stems\n",
		out, len(l.Nouns), len(l.Adjectives), len(l.Pronouns), len(l.Stems),
	)
}
