package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/frizinak/skloru/common"
	"github.com/frizinak/skloru/lexicon"
	"github.com/frizinak/skloru/russian"
)

func exit(err error) {
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func suggestions(store *lexicon.Store, err error) error {
	var nf *lexicon.NotFoundError
	if !errors.As(err, &nf) {
		return err
	}

	var sug []string
	switch nf.Kind {
	case "noun":
		sug = store.SuggestNouns(nf.Key, 3)
	case "adjective":
		sug = append(
			store.SuggestAdjectives(nf.Key, 3),
			store.SuggestPronouns(nf.Key, 3)...,
		)
	case "pronoun":
		sug = store.SuggestPronouns(nf.Key, 3)
	}
	if len(sug) == 0 {
		return err
	}

	return fmt.Errorf("%w (did you mean: %s)", err, strings.Join(sug, ", "))
}

func main() {
	var caseName string
	var numberName string
	var all bool
	var stem bool
	var noColor bool
	var drills uint
	flag.StringVar(&caseName, "c", "nominative", "grammatical case (nom, gen, acc, dat, inst, prep)")
	flag.StringVar(&numberName, "n", "singular", "number (sg, pl)")
	flag.BoolVar(&all, "a", false, "print all six cases")
	flag.BoolVar(&stem, "stem", false, "prefix the matching sentence stem")
	flag.BoolVar(&noColor, "nc", false, "don't print ANSI colors")
	flag.UintVar(&drills, "r", 0, "print this many random drill phrases and exit")
	flag.Parse()

	c, err := russian.ParseCase(caseName)
	exit(err)
	num, err := russian.ParseNumber(numberName)
	exit(err)

	svc, err := common.GetService()
	exit(err)
	tpl, err := common.GetTpl(!noColor)
	exit(err)

	if drills > 0 {
		results := make([]common.Result, 0, drills)
		for i := uint(0); i < drills; i++ {
			phrase, err := svc.RandomPhrase(c, num)
			exit(err)
			results = append(results, common.Result{
				Case:   c,
				Number: num,
				Phrase: phrase,
			})
		}
		exit(tpl.Execute(os.Stdout, results))
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		exit(errors.New("please provide a noun (optionally preceded by adjectives/pronouns)"))
	}

	// the noun comes last, as it would in the phrase
	noun := args[len(args)-1]
	agree := args[:len(args)-1]

	cases := []russian.Case{c}
	if all {
		cases = russian.Cases[:]
	}

	results := make([]common.Result, 0, len(cases))
	for _, cc := range cases {
		res, err := common.BuildResult(svc.Store(), cc, num, noun, agree, stem)
		if err != nil {
			exit(suggestions(svc.Store(), err))
		}
		results = append(results, res)
	}

	exit(tpl.Execute(os.Stdout, results))
}
