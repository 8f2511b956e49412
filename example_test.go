package texnote_test

import (
	"fmt"
	"log"

	"pkt.systems/texnote"
)

func ExampleConvertString() {
	out, err := texnote.ConvertString("\\section{Intro}\nSome $x^2$ text.")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
	// Output:
	// # Intro
	// Some $$x^2$$ text.
}

func ExampleConvertString_options() {
	out, err := texnote.ConvertString(`\section{Notes}`,
		texnote.WithHeadingOffset(1),
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
	// Output:
	// ## Notes
}
