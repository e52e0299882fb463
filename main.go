package main

import (
	"github.com/findy-network/findy-fixture/cmd"
)

func main() {
	cmd.Execute()
}
