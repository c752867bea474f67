package main

import "accountkeeper/cmd/client/cmd"

func main() {
	cmd.Execute()
}
