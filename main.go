package main

import "dq-health-check/cmd"

func main() {
	cmd.Execute()
}
