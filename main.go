package main

import "github.com/nalutools/exomesh/cmd"

func main() {
	cmd.Execute()
}
