package russian

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"time"
)

func EncodeGOB(w io.Writer, l Lexicon) error {
	return gob.NewEncoder(w).Encode(l)
}

func DecodeGOB(r io.Reader) (Lexicon, error) {
	l := Lexicon{}
	return l, gob.NewDecoder(r).Decode(&l)
}

func StoreGOB(file string, l Lexicon) error {
	tmp := fmt.Sprintf("%s.%d.tmp", file, time.Now().UnixNano())
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := EncodeGOB(f, l); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}

	f.Close()
	return os.Rename(tmp, file)
}

func LoadGOB(file string) (Lexicon, error) {
	f, err := os.Open(file)
	if err != nil {
		return Lexicon{}, err
	}

	l, err := DecodeGOB(f)
	f.Close()
	return l, err
}
