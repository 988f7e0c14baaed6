package main

import (
	"fmt"
	"os"

	"romamo/ibkr-flex/cmd/batch"
	"romamo/ibkr-flex/cmd/convert"
	"romamo/ibkr-flex/cmd/download"
	"romamo/ibkr-flex/cmd/parse"
	"romamo/ibkr-flex/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(download.Cmd)
	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
