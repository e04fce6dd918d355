package main

import (
	"fmt"
	"os"

	"github.com/zardoz99/rt5d/internal/transport"
)

func runPorts(args []string) int {
	fs, _ := newFlagSet("ports")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	ports, err := transport.ListPorts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rt5d: %v\n", err)
		return classifyErr(err)
	}

	for _, p := range ports {
		fmt.Println(p)
	}
	return exitOK
}
