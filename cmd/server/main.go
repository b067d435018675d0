package main

import "usercrud/cmd/server/cmd"

func main() {
	cmd.Execute()
}
