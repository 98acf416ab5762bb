//go:build ignore

// e2e_words exercises the full conversion pipeline: the golden corpus,
// an exhaustive small-value sweep across every language, concurrency, and
// the scale-limit boundaries.
// Run from the project root:
//
//	go run e2e/e2e_words.go
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/forzagreen/n2words-sub000/data"
	"github.com/forzagreen/n2words-sub000/lang"
	"github.com/forzagreen/n2words-sub000/words"
)

const (
	sweepMax    = 9999
	concWorkers = 8
	concIter    = 200
)

type goldenCase struct {
	Name  string `json:"name"`
	Lang  string `json:"lang"`
	Input string `json:"input"`
	Want  string `json:"want"`
}

func main() {
	start := time.Now()
	failures := 0

	failures += runGolden()
	failures += runSweep()
	failures += runConcurrency()
	failures += runScaleLimits()

	fmt.Printf("\nCompleted in %s\n", time.Since(start).Round(time.Millisecond))
	if failures > 0 {
		log.Fatalf("e2e: %d failure(s)", failures)
	}
	fmt.Println("e2e: all checks passed")
}

func runGolden() int {
	var cases []goldenCase
	if err := json.Unmarshal(data.GoldenWords, &cases); err != nil {
		log.Fatalf("parsing embedded golden corpus: %v", err)
	}

	failures := 0
	for _, tc := range cases {
		got, err := words.ToWords(tc.Input, words.Options{Lang: tc.Lang})
		if err != nil {
			fmt.Fprintf(os.Stderr, "GOLDEN_FAIL %s: %v\n", tc.Name, err)
			failures++
			continue
		}
		if got != tc.Want {
			fmt.Fprintf(os.Stderr, "GOLDEN_FAIL %s: got %q, want %q\n", tc.Name, got, tc.Want)
			failures++
		}
	}
	fmt.Printf("golden corpus:   %d cases, %d failures\n", len(cases), failures)
	return failures
}

// runSweep converts every value up to sweepMax in every language and
// checks the output is nonempty and structurally sane.
func runSweep() int {
	failures := 0
	converted := 0

	for _, code := range lang.Codes() {
		for n := 0; n <= sweepMax; n++ {
			text, err := words.ToWords(n, words.Options{Lang: code})
			if err != nil {
				fmt.Fprintf(os.Stderr, "SWEEP_FAIL %s/%d: %v\n", code, n, err)
				failures++
				continue
			}
			converted++
			if text == "" {
				fmt.Fprintf(os.Stderr, "SWEEP_FAIL %s/%d: empty output\n", code, n)
				failures++
			}
			if strings.Contains(text, "  ") {
				fmt.Fprintf(os.Stderr, "SWEEP_FAIL %s/%d: doubled space in %q\n", code, n, text)
				failures++
			}
			if text != strings.TrimSpace(text) {
				fmt.Fprintf(os.Stderr, "SWEEP_FAIL %s/%d: unstripped space in %q\n", code, n, text)
				failures++
			}
		}
	}
	fmt.Printf("value sweep:     %d conversions, %d failures\n", converted, failures)
	return failures
}

func runConcurrency() int {
	var errCount atomic.Int64
	var wg sync.WaitGroup

	codes := lang.Codes()
	for w := 0; w < concWorkers; w++ {
		wg.Go(func() {
			for i := 0; i < concIter; i++ {
				code := codes[i%len(codes)]
				if _, err := words.ToWords(i*7919, words.Options{Lang: code}); err != nil {
					errCount.Add(1)
				}
			}
		})
	}
	wg.Wait()

	fmt.Printf("concurrency:     %d workers x %d iterations, %d errors\n", concWorkers, concIter, errCount.Load())
	return int(errCount.Load())
}

// runScaleLimits grows the input one digit at a time until each language
// rejects it, and checks the rejection is the range error and final.
func runScaleLimits() int {
	failures := 0
	for _, code := range lang.Codes() {
		limit := 0
		for length := 1; length <= 200; length++ {
			input := "9" + strings.Repeat("9", length-1)
			if _, err := words.ToWords(input, words.Options{Lang: code}); err != nil {
				if !errors.Is(err, words.ErrScaleOutOfRange) {
					fmt.Fprintf(os.Stderr, "LIMIT_FAIL %s: unexpected error at %d digits: %v\n", code, length, err)
					failures++
				}
				limit = length
				break
			}
		}
		if limit == 1 {
			fmt.Fprintf(os.Stderr, "LIMIT_FAIL %s: rejects single-digit input\n", code)
			failures++
		}
		if limit > 0 {
			// Once out of range, longer input must stay out of range.
			input := strings.Repeat("9", limit+12)
			if _, err := words.ToWords(input, words.Options{Lang: code}); err == nil {
				fmt.Fprintf(os.Stderr, "LIMIT_FAIL %s: %d digits accepted past the %d-digit limit\n", code, limit+12, limit)
				failures++
			}
		}
	}
	fmt.Printf("scale limits:    checked %d languages, %d failures\n", len(lang.Codes()), failures)
	return failures
}
