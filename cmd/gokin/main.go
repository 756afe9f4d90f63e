package main

import "github.com/philipparndt/gokin/cmd"

func main() {
	cmd.Execute()
}
