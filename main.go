package main

import "github.com/Coding-Badly/gowix/cmd"

func main() {
	cmd.Execute()
}
