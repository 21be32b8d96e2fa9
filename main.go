package main

import "github.com/VoxDroid/cmdy/cmd"

func main() {
	cmd.Execute()
}
