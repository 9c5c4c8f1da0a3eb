package main

import "github.com/jaminalder/tttai/internal/cli"

func main() {
	cli.Execute()
}
