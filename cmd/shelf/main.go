package main

import (
	"os"

	"github.com/shelfapp/shelf/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
