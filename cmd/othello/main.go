package main

import "github.com/mcoot/othello/internal/cli"

func main() {
	cli.Execute()
}
