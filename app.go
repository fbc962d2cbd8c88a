package main

import "github.com/kawagoe/shiplog/cmd"

func main() {
	cmd.Run()
}
