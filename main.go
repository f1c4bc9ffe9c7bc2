package main

import (
	"github.com/gregn610/siteconf/cli"
)

func main() {
	cli.Execute()
}
