package walkthrough

import (
	"context"
	"fmt"
	"io"
)

// Direction is a closed set of headings.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Heading describes where the player is going.
func (d Direction) Heading() string {
	return fmt.Sprintf("we are heading %s !", d)
}

// IsEven returns its input alongside whether it is even.
func IsEven(num uint32) (uint32, bool) {
	return num, num%2 == 0
}

func printNumbers(w io.Writer, start, end uint32) {
	for i := start; i < end; i++ {
		n, even := IsEven(i)
		fmt.Fprintf(w, "%d => %t\n", n, even)
	}
}

func tuple() (int, float64, string, bool) {
	return 20, 4.44, "Go", false
}

func basics(_ context.Context, env *Env) error {
	w := env.Out
	fmt.Fprintln(w, "Hello, world!")

	for i := 1; i < 11; i++ {
		fmt.Fprintf(w, "value of i is %d\n", i)
	}
	for index, value := range []string{"x", "y", "z"} {
		fmt.Fprintf(w, "index : %d , value : %s\n", index, value)
	}

	fmt.Fprintln(w, Up.Heading())

	// Go has no tuples; anonymous structs and multiple returns cover the same ground.
	tup1 := struct {
		N    int
		F    float64
		Lang string
		Flag bool
	}{20, 4.44, "Go", false}
	tup2 := struct {
		N    int
		Pair [2]string
	}{20, [2]string{"aa", "bb"}}

	fmt.Fprintln(w, tup1.N)
	fmt.Fprintln(w, tup1.F)
	fmt.Fprintln(w, tup1.Lang)
	fmt.Fprintln(w, tup1.Flag)
	fmt.Fprintln(w, tup2.Pair[1])

	v1, v2, v3, v4 := tuple()
	fmt.Fprintln(w, v1)
	fmt.Fprintln(w, v2)
	fmt.Fprintln(w, v3)
	fmt.Fprintln(w, v4)

	printNumbers(w, 10, 21)

	// shadowing
	x := 10
	fmt.Fprintf(w, "outside scope : value of x is -> %d\n", x)
	{
		x := 15
		fmt.Fprintf(w, "inside scope : value of x is -> %d\n", x)
	}
	x = 11
	fmt.Fprintf(w, "outside scope : value of x is -> %d\n", x)
	{
		x := "this is a string-01"
		fmt.Fprintf(w, "value of x is -> %s\n", x)
		x = "this is a string-02"
		fmt.Fprintf(w, "value of x is -> %s\n", x)
	}

	// pointers
	y := 55.55
	yr := &y
	fmt.Fprintf(w, "yr is => %v\n", *yr)
	mutRef := &y
	*mutRef += 100
	fmt.Fprintf(w, "mutRef is => %v\n", *mutRef)
	fmt.Fprintf(w, "y is => %v\n", y)
	return nil
}
