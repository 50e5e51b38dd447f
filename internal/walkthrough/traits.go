package walkthrough

import (
	"context"
	"fmt"
	"io"
)

// Person implements fmt.Stringer and VoiceBox.
type Person struct {
	Name string
	Age  uint8
}

func (p Person) String() string {
	return fmt.Sprintf("My Name Is %s, & I am %d", p.Name, p.Age)
}

// VoiceBox is anything that can talk.
type VoiceBox interface {
	Speak(w io.Writer)
	CanSpeak() bool
}

var _ VoiceBox = Person{}

func (p Person) Speak(w io.Writer) {
	fmt.Fprintf(w, "Hello, my name is %s and my age is %d\n", p.Name, p.Age)
}

// CanSpeak is true once the person is older than two.
func (p Person) CanSpeak() bool {
	return p.Age > 2
}

func traits(_ context.Context, env *Env) error {
	w := env.Out

	fmt.Fprintln(w, Person{Name: "Giridhar", Age: 42})

	for i, v := range []VoiceBox{Person{Name: "Giri1", Age: 1}, Person{Name: "Giri2", Age: 3}} {
		v.Speak(w)
		fmt.Fprintf(w, "person%d can speak ? %t\n", i+1, v.CanSpeak())
	}
	return nil
}
