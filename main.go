package main

import (
	"os"

	"studio-launcher/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
