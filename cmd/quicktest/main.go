package main

import (
	"os"

	"github.com/toyz/quicktest/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
