package main

import (
	"os"

	"github.com/interfacer/interfacer/cli"
)

//go:generate go run -tags task task/gen-imports.go -o plugins.gen.go ./plugins/...

func main() {
	code := cli.Main()
	os.Exit(code)
}
