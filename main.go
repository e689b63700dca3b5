package main

import "github.com/mateconpizza/dejavu/cmd"

func main() {
	cmd.Execute()
}
