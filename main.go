package main

import "github.com/Viibezz/tigris-public/cmd"

func main() {
	cmd.Execute()
}
