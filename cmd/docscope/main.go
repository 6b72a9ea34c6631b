package main

import "github.com/dgallion1/docscope/internal/cli"

func main() {
	cli.Execute()
}
