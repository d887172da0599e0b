package main

import "github.com/mchmarny/qfair/pkg/cli"

func main() {
	cli.Execute()
}
