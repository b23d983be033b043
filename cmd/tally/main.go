package main

import "tally/internal/commands"

func main() {
	commands.Execute()
}
