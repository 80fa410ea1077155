package main

import (
	"os"

	"github.com/jackielii/facultypage/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
