package main

import (
	"github.com/cartolab/mapstrap/cmd"
)

func main() {
	cmd.Execute()
}
