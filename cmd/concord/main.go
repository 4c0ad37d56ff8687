package main

import "github.com/agenthands/concord/cmd/concord/cmd"

func main() {
	cmd.Execute()
}
