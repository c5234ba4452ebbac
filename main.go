package main

import "github.com/thisguymartin/steep/cmd"

func main() {
	cmd.Execute()
}
