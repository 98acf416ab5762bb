// Command n2w converts numbers to words from the command line.
//
// Usage:
//
//	n2w [-lang code] [-gender m|f] [-drop-spaces] number...
//	n2w -list
//
// With no number arguments, values are read line by line from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/forzagreen/n2words-sub000/lang"
	"github.com/forzagreen/n2words-sub000/words"
)

func main() {
	var (
		langCode   = flag.String("lang", "en", "language code (see -list)")
		gender     = flag.String("gender", "", "digit-word gender: m or f")
		dropSpaces = flag.Bool("drop-spaces", false, "remove spaces from the output")
		list       = flag.Bool("list", false, "print supported language codes and exit")
	)
	flag.Parse()

	if *list {
		for _, code := range lang.Codes() {
			p, err := lang.Get(code)
			if err != nil {
				fmt.Fprintf(os.Stderr, "n2w: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("%s\t%s\n", code, p.Name)
		}
		return
	}

	opts := words.Options{Lang: *langCode, DropSpaces: *dropSpaces}
	switch strings.ToLower(*gender) {
	case "":
	case "m":
		opts.Gender = lang.Masculine
	case "f":
		opts.Gender = lang.Feminine
	default:
		fmt.Fprintf(os.Stderr, "n2w: invalid -gender %q (want m or f)\n", *gender)
		os.Exit(2)
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		if err := convertStdin(opts); err != nil {
			fmt.Fprintf(os.Stderr, "n2w: %v\n", err)
			os.Exit(1)
		}
		return
	}

	failed := false
	for _, input := range inputs {
		text, err := words.ToWords(input, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "n2w: %v\n", err)
			failed = true
			continue
		}
		fmt.Println(text)
	}
	if failed {
		os.Exit(1)
	}
}

func convertStdin(opts words.Options) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		text, err := words.ToWords(line, opts)
		if err != nil {
			return err
		}
		fmt.Println(text)
	}
	return scanner.Err()
}
