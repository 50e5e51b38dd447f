package walkthrough

import (
	"context"
	"fmt"
	"io"
)

// Color is an RGB triple with named fields.
type Color struct {
	Red, Green, Blue uint8
}

// TupleColor is the positional form of Color.
type TupleColor [3]uint8

func printColor(w io.Writer, c *Color) {
	fmt.Fprintf(w, "color values are : %d, %d, %d\n", c.Red, c.Green, c.Blue)
}

// Rectangle is printed with %+v in the tour.
type Rectangle struct {
	Width  uint32
	Height uint32
}

func (r Rectangle) Describe() string {
	return fmt.Sprintf("Rectangle : %d x %d", r.Width, r.Height)
}

func (r Rectangle) IsSquare() bool {
	return r.Width == r.Height
}

// Dimensions carries a width and height and knows its area.
type Dimensions struct {
	Width  uint32
	Height uint32
}

// NewDimensions is the constructor form.
func NewDimensions(width, height uint32) Dimensions {
	return Dimensions{Width: width, Height: height}
}

// CalculateArea takes a pointer so the caller keeps ownership of d.
func CalculateArea(d *Dimensions) uint32 {
	return d.Width * d.Height
}

func (d Dimensions) Area() uint32 {
	return d.Width * d.Height
}

func (d Dimensions) Show(w io.Writer) {
	fmt.Fprintf(w, "Area of the specified object with dimensions %d x %d => %d\n", d.Width, d.Height, d.Area())
}

func (d Dimensions) String() string {
	return fmt.Sprintf("(width is %d , height is %d) , Area : %d", d.Width, d.Height, d.Area())
}

func structs(_ context.Context, env *Env) error {
	w := env.Out

	background := Color{Red: 255, Green: 70, Blue: 15}
	fmt.Fprintf(w, "color is -> %d %d %d\n", background.Red, background.Green, background.Blue)

	red := TupleColor{255, 0, 0}
	fmt.Fprintf(w, "red is %d, %d, %d\n", red[0], red[1], red[2])

	printColor(w, &background)

	nums := [...]int{0, 1, 2, 3, 4, 5}
	fmt.Fprintf(w, "arrays : nums[1] => %d\n", nums[1])
	for _, n := range nums {
		fmt.Fprintf(w, "looping through array, value => %d\n", n)
	}
	for i := 0; i < len(nums); i++ {
		fmt.Fprintf(w, "looping through array, value (i) => %d\n", nums[i])
	}
	var nums2 [6]int32 = [6]int32{0, 1, 2, 3, 4, 5}
	for _, n := range nums2 {
		fmt.Fprintf(w, "looping through array, value => %d\n", n)
	}
	var nums3 [20]int
	for _, n := range nums3 {
		fmt.Fprintf(w, "looping through array, value => %d\n", n)
	}

	rect := Rectangle{Width: 10, Height: 10}
	fmt.Fprintf(w, "%+v\n", rect)
	fmt.Fprintln(w, rect.Describe())
	fmt.Fprintf(w, "Rectangle is square ? %t\n", rect.IsSquare())

	obj := Dimensions{Width: 15, Height: 20}
	fmt.Fprintf(w, "Area of obj with dimensions %d x %d => %d\n", obj.Width, obj.Height, CalculateArea(&obj))

	obj2 := Dimensions{Width: 35, Height: 70}
	fmt.Fprintf(w, "Area of obj2 with dimensions %d x %d => %d\n", obj2.Width, obj2.Height, obj2.Area())

	NewDimensions(35, 45).Show(w)

	test := NewDimensions(99, 67)
	test.Show(w)
	// String() takes over %v and %+v; %#v shows the Go-syntax form.
	fmt.Fprintf(w, "test : %+v\n", struct{ Width, Height uint32 }(test))
	fmt.Fprintf(w, "test : %#v\n", test)
	fmt.Fprintf(w, "Here are the dimensions and area for test : %v\n", test)
	return nil
}
