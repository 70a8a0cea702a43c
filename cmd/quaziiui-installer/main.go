package main

import (
	"fmt"
	"os"

	"github.com/quazii/quaziiui-installer/internal/interfaces/cli"
	"github.com/quazii/quaziiui-installer/internal/interfaces/di"
)

func main() {
	container, err := di.NewContainer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize installer: %v\n", err)
		os.Exit(1)
	}

	cli.Execute(container)
}
