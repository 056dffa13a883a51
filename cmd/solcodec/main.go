package main

import (
	"os"

	"github.com/lugondev/solcodec/cmd/solcodec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
