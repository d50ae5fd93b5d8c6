package main

import "github.com/keurnel/x86dis/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
