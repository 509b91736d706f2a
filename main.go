package main

import "github.com/dzjyyds666/dcf/cmd"

func main() {
	cmd.Execute()
}
