package main

import "postboard/cmd/client/cmd"

func main() {
	cmd.Execute()
}
