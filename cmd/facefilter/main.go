package main

import (
	"os"

	"github.com/gogpu/facefilter/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
