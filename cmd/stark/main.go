package main

import "github.com/starklab/starkgo/internal/cli"

func main() {
	cli.Execute()
}
