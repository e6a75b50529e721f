package main

import (
	"github.com/triggerfi/triggerfi/cli"
)

func main() {
	cli.Execute()
}
