package main

// Score an asset file offline:
//   go run ./cmd/scorectl match --asset resume.json --job job.txt
//   go run ./cmd/scorectl ats --asset resume.json

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
