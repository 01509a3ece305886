// Package data ships the lexicon the commands run on.
package data

import _ "embed"

//go:embed lexicon/nouns.tsv
var Nouns []byte

//go:embed lexicon/adjectives.tsv
var Adjectives []byte

//go:embed lexicon/pronouns.tsv
var Pronouns []byte

//go:embed lexicon/stems.tsv
var Stems []byte
