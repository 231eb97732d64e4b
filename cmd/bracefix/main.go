package main

import "bracefix/cmd/bracefix/cmd"

func main() {
	cmd.Execute()
}
