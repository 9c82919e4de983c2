package main

import (
	"os"

	"wsld/internal/wslctl"
)

func main() { os.Exit(wslctl.Main()) }
