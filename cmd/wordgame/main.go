package main

import "github.com/mcoot/wordgame/internal/cli"

func main() {
	cli.Execute()
}
