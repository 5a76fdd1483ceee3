package main

import (
	"github.com/owljoa/RustPython/pkg/cli"
)

func main() {
	cli.Execute()
}
