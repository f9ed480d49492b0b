package main

import "github.com/KaramelBytes/tableprof-cli/cmd"

func main() {
	cmd.Execute()
}
