package main

import "github.com/lepinkainen/paupercube/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
