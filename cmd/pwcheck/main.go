package main

import "github.com/vaultpass/passcheck/internal/cli"

func main() {
	cli.Execute()
}
