package main

import "github.com/lepinkainen/crux/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
