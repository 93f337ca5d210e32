package main

import "github.com/Rajeshaligeti/hope-health/internal/cli"

func main() {
	cli.Execute()
}
