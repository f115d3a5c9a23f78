package main

import "github.com/criteo/git-review/cmd"

func main() {
	cmd.Execute()
}
