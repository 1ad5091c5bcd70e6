package main

import (
	"os"

	"github.com/nguyentantai21042004/audio-scribe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
