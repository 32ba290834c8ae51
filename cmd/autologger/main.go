package main

import "github.com/smith-xyz/autologger/cmd/autologger/internal/cli"

func main() {
	cli.Execute()
}
