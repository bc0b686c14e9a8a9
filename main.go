package main

import "github.com/nescli/nescli/cmd"

func main() {
	cmd.Execute()
}
