package main

import (
	"os"

	"github.com/nguyentantai21042004/voice-notes/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
