package main

import "github.com/slviewer-tools/firestorm-wine-installer/cmd/firestorm-installer/cmd"

func main() {
	cmd.Execute()
}
