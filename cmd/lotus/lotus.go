package main

import (
	"log"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
