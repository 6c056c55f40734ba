package main

import (
	"log"
	"os"

	"github.com/funvibe/rlang/pkg/cli"
)

func main() {
	log.SetFlags(0)          // Disable timestamp in logs
	log.SetOutput(os.Stderr) // Log to stderr, stdout carries results

	cli.Run()
}
