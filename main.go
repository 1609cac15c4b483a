package main

import "github.com/gherkin-tools/gluescan/cmd"

func main() {
	cmd.Execute()
}
