package main

import "github.com/papapumpkin/bodygraph/cmd"

func main() {
	cmd.Execute()
}
