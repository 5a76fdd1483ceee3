package main

import (
	"log"

	"github.com/owljoa/RustPython/pkg/server"
)

func main() {
	if err := server.Run(); err != nil {
		log.Fatal(err)
	}
}
