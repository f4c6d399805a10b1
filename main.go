package main

import "scan-verifier/cmd"

func main() {
	cmd.Execute()
}
