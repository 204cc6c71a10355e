package main

import "github.com/spectronaut/spdrgb/cmd"

func main() {
	cmd.Execute()
}
