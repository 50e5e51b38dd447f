package walkthrough

import (
	"context"
	"fmt"
	"strings"
)

// RuneAt returns the i-th character of s, counting runes rather than bytes.
func RuneAt(s string, i int) (rune, bool) {
	if i < 0 {
		return 0, false
	}
	for _, r := range s {
		if i == 0 {
			return r, true
		}
		i--
	}
	return 0, false
}

func stringMethods(_ context.Context, env *Env) error {
	w := env.Out

	s := "the quick brown fox jumps over the lazy dog"
	fmt.Fprintf(w, "length of s : %d\n", len(s))
	fmt.Fprintf(w, "is s empty ? %t\n", s == "")
	for _, word := range strings.Fields(s) {
		fmt.Fprintf(w, "> %s\n", word)
	}
	for _, sub := range []string{"jumps", "jump", "jumps ", "jumps over_"} {
		fmt.Fprintln(w, strings.Contains(s, sub))
	}
	s += " XYZ"
	fmt.Fprintf(w, "s : %s\n", s)

	fmt.Fprintln(w)
	replaced := "go is fantastic , must check it out please"
	fmt.Fprintf(w, "After Replace : %s\n\n", strings.ReplaceAll(replaced, "fantastic", "great"))

	multi := "go\nis\nfantastic,\nmust\ncheck\nit\nout\nplease"
	fmt.Fprintf(w, "After Replace : \n\n%s\n\n", strings.ReplaceAll(multi, "fantastic", "great"))
	for _, line := range strings.Split(multi, "\n") {
		fmt.Fprintf(w, "[ %s ]\n", line)
	}
	fmt.Fprintln(w)

	for _, sep := range []struct{ text, sep string }{
		{"go + is + fantastic, + must + check + it + out + please", "+"},
		{"go###is###fantastic,###must###check###it###out###please", "###"},
	} {
		for _, token := range strings.Split(sep.text, sep.sep) {
			fmt.Fprintf(w, "'%s'\n", token)
		}
		fmt.Fprintln(w)
	}

	padded := "   go   is   fantastic,   must   check   it   out   please   \n\r"
	fmt.Fprintf(w, "Before Trim : \n\n#%s#\n\n", padded)
	fmt.Fprintf(w, "After Trim : \n\n#%s#\n\n", strings.TrimSpace(padded))

	chars := "go is fantastic , must check it out please"
	fmt.Fprintln(w, chars)
	if c, ok := RuneAt(chars, 5); ok {
		fmt.Fprintf(w, "char at index 5 : %c\n", c)
	} else {
		fmt.Fprintln(w, "char not found")
	}
	return nil
}
