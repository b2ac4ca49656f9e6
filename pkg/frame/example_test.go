package frame_test

import (
	"fmt"

	"github.com/framekit/frame/pkg/frame"
)

func ExampleDataFrame_Select() {
	df, _ := frame.New(
		frame.Strings("city", "oslo", "lima", "accra"),
		frame.Ints("population", 717710, 10719000, 2514000),
	)

	out, _ := df.Select(frame.At(frame.Rows(1, 2), frame.ColNamed("city")))
	for i := 0; i < out.Len(); i++ {
		v, _ := out.Cell(i, "city")
		fmt.Println(v)
	}
	// Output:
	// lima
	// accra
}

func ExampleDataFrame_Str() {
	df, _ := frame.New(frame.Strings("city", "oslo", "lima"))

	upper, _ := df.Str().Upper("city")
	v, _ := upper.Cell(0, "city")
	fmt.Println(v)
	// Output:
	// OSLO
}

func ExampleDataFrame_Dtypes() {
	df, _ := frame.New(
		frame.Strings("city", "oslo"),
		frame.Floats("area_km2", 454.12),
	)

	dtypes := df.Dtypes()
	for i := 0; i < dtypes.Len(); i++ {
		name, _ := dtypes.Cell(i, "Column Name")
		kind, _ := dtypes.Cell(i, "Data Type")
		fmt.Printf("%s: %s\n", name, kind)
	}
	// Output:
	// city: string
	// area_km2: float
}
