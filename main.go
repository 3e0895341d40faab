package main

import "github.com/XaaXaaX/sdk/cmd"

func main() {
	cmd.Execute()
}
