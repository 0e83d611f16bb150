package main

import (
	"log"

	"github.com/chrmotors/complaint-service/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
