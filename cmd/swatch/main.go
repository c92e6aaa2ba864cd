package main

import "github.com/okian/swatch/internal/cli"

func main() {
	cli.Execute()
}
