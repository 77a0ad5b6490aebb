package main

import "imagine-api/cmd"

func main() {
	cmd.Execute()
}
