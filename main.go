package main

import "tripdash/cmd"

func main() {
	cmd.Execute()
}
