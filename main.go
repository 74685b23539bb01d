package main

import (
	"github.com/thanhnguyen2187/soundbox-flash/cli"
)

func main() {
	cli.Start()
}
