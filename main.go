package main

import "github.com/shyamenk/cmdx/cmd"

func main() {
	cmd.Execute()
}
