package walkthrough

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
)

func printSlice(w io.Writer, name string, s []int32) {
	for i, v := range s {
		fmt.Fprintf(w, "%s : index : %d , element => %d\n", name, i, v)
	}
}

// SkillScores is the map the collections section works on.
func SkillScores() map[string]int {
	return map[string]int{
		"go programming":   100,
		"rust programming": 90,
		"web development":  90,
		"grpc development": 95,
	}
}

func collections(_ context.Context, env *Env) error {
	w := env.Out

	var first []int32
	second := []int32{1, 2, 3, 4}

	first = append(first, 10, 100, 1000)
	second = append(second, 20)
	printSlice(w, "first", first)
	printSlice(w, "second", second)

	first = slices.Delete(first, 0, 1)
	second = slices.Delete(second, 0, 1)
	fmt.Fprintln(w, "after removing an element from the slice...")
	printSlice(w, "first", first)
	printSlice(w, "second", second)

	scores := SkillScores()
	fmt.Fprintf(w, "total elements in map : %d\n", len(scores))

	if v, ok := scores["web development"]; ok {
		fmt.Fprintf(w, "got this data from map : %d\n", v)
	} else {
		fmt.Fprintln(w, "nothing found for key !")
	}

	delete(scores, "grpc development")
	fmt.Fprintf(w, "total elements in map : %d\n", len(scores))

	// map iteration order is random; sort for stable output
	for _, key := range slices.Sorted(maps.Keys(scores)) {
		fmt.Fprintf(w, "key : %s\n", key)
		fmt.Fprintf(w, "value : %d\n", scores[key])
	}

	_, hasXYZ := scores["xyz"]
	_, hasGo := scores["go programming"]
	fmt.Fprintf(w, "scores contains key 'xyz' : %t\n", hasXYZ)
	fmt.Fprintf(w, "scores contains key 'go programming' : %t\n", hasGo)
	return nil
}
