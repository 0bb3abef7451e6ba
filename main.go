package main

import "github.com/sabe-project/sabe/cmd"

func main() {
	cmd.Execute()
}
