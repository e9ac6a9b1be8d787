package main

import (
	"os"

	"github.com/kbukum/errkit/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
