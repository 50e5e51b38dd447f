package walkthrough

import (
	"context"
	"fmt"
	"regexp"
)

const (
	wordsText  = "the quick brown fox jumps over the lazy dog 5837535 39h3yr3t8 v9d9"
	digitsText = "64646 642436221 744 643466 66002 46642632 33556"
)

var (
	fiveWordChars = regexp.MustCompile(`\w{5}`)
	fiveLetters   = regexp.MustCompile(`[a-zA-Z]{5}`)
	fiveDigits    = regexp.MustCompile(`[0-9]{5}`)
)

func regexDemo(_ context.Context, env *Env) error {
	w := env.Out

	fmt.Fprintf(w, "Found Match ? %t\n\n", fiveWordChars.MatchString(wordsText))

	for _, m := range fiveLetters.FindAllString(wordsText, -1) {
		fmt.Fprintf(w, "regex : found match : %q\n", m)
	}
	fmt.Fprintln(w)

	for _, m := range fiveDigits.FindAllString(digitsText, -1) {
		fmt.Fprintf(w, "regex : found match : %q\n", m)
	}
	return nil
}
