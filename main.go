package main

import "chordscope/cmd"

func main() {
	cmd.Execute()
}
