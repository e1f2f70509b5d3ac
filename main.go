package main

import "titleguard/cmd"

func main() {
	cmd.Execute()
}
