package main

import "github.com/CuteBeaeast/treeomics/cmd"

func main() {
	cmd.Execute()
}
