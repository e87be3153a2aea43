package main

import "store-sync/cmd"

func main() {
	cmd.Execute()
}
