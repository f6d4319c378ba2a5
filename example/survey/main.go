// Package main demonstrates choice completion and keyed gathering.
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

	// "gr" auto-completes to "green"; an ambiguous or unknown prefix
	// re-prompts with the derived response message.
	color, err := a.Ask(ask.New("Favorite color?  ", ask.KindChoices,
		ask.WithChoices("red", "green", "blue"),
		ask.WithCase(ask.CaseDown),
		ask.WithEditor(),
	))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Color: %v\n", color)

	// One answer per key, collected into a map.
	replies, err := a.Ask(ask.New("{{.Key}}?  ", ask.KindString,
		ask.WithGatherKeys("name", "quest", "favorite fruit"),
		ask.WithWhitespace(ask.WhitespaceStrip),
	))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Replies: %v\n", replies)
}
