package main

import (
	"os"

	"github.com/Larry-Yatch/FTP-v3-unified-sub001/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
