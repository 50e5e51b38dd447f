package walkthrough

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFifty is returned by IsItFifty for anything but 50.
var ErrNotFifty = errors.New("oops it did not work !")

// Check describes a well-known name.
func Check(name string) string {
	switch name {
	case "linus":
		return "he created linux !"
	case "giridhar":
		return "he is getting better at GO language"
	case "clinton", "bush":
		return "they were US presidents !"
	default:
		return "oops : does not match anything"
	}
}

// Occupation looks up what a known person does.
func Occupation(name string) (string, bool) {
	switch name {
	case "giridhar":
		return "software developer", true
	case "linus":
		return "linux kernel developer", true
	default:
		return "", false
	}
}

// IsWeekday is false only on Saturday and Sunday.
func IsWeekday(d time.Weekday) bool {
	switch d {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// IsItFifty succeeds only for 50.
func IsItFifty(num int32) (uint32, error) {
	if num == 50 {
		return uint32(num), nil
	}
	return 0, ErrNotFifty
}

func matching(_ context.Context, env *Env) error {
	w := env.Out

	for _, name := range []string{"linus", "giridhar", "abc", "clinton"} {
		fmt.Fprintln(w, Check(name))
	}

	digits := "0123456789"
	if c, ok := RuneAt(digits, 9); ok {
		fmt.Fprintf(w, "character at index 10 : %c\n", c)
	} else {
		fmt.Fprintln(w, "character at index 10 : no character found at given index !")
	}

	for i, name := range []string{"giridhar", "bhujanga", "linus"} {
		occ, ok := Occupation(name)
		if !ok {
			occ = "no occupation found."
		}
		fmt.Fprintf(w, "%d > occupation is : %s\n", i+1, occ)
	}

	fmt.Fprintf(w, "Tuesday is weekday ? : %t\n", IsWeekday(time.Tuesday))
	fmt.Fprintf(w, "Saturday is weekday ? : %t\n", IsWeekday(time.Saturday))

	myNum := int32(51)
	if _, err := IsItFifty(myNum); err != nil {
		fmt.Fprintf(w, "Error ! myNum is not 50 , it is actually : %d\n", myNum)
	} else {
		fmt.Fprintln(w, "Good ! myNum is 50 !")
	}
	return nil
}
