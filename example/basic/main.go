// Package main demonstrates basic usage of the ask library.
package main

import (
	"fmt"
	"log"

	"github.com/nao1215/ask"
)

func main() {
	a, err := ask.NewAsker()
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	name, err := a.AskString("What is your name?  ",
		ask.WithWhitespace(ask.WhitespaceStrip),
	)
	if err != nil {
		log.Fatal(err)
	}

	age, err := a.AskInt("Age?  ",
		ask.WithDefault("35"),
		ask.WithAbove(0),
		ask.WithBelow(130),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Hello %s, %d years old.\n", name, age)
}
