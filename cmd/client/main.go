package main

import "usercrud/cmd/client/cmd"

func main() {
	cmd.Execute()
}
