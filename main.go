package main

import "pipegrade/cmd"

func main() {
	cmd.Execute()
}
