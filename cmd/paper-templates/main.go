package main

import (
	"github.com/paper-code/templates/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		cli.ExitWithError(err)
	}
}
