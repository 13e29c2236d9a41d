package main

import "github.com/mcoot/courtqueue/internal/cli"

func main() {
	cli.Execute()
}
