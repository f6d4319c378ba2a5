// Package main demonstrates echo masking and verified gathering.
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

	// Both entries are masked and must match; on mismatch the whole
	// gather restarts with the mismatch response.
	pass, err := a.Ask(ask.New("Passphrase:  ", ask.KindString,
		ask.WithEchoMask('*'),
		ask.WithValidator(func(s string) bool { return len(s) >= 8 }),
		ask.WithResponse(ask.ResponseNotValid, "Use at least 8 characters."),
		ask.WithGatherCount(2),
		ask.WithVerifyMatch(),
	))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Stored a %d character passphrase.\n", len(pass.(string)))
}
