package main

import (
	"fmt"
	"os"

	"fjacquet/sales-report/cmd/generate"
	"fjacquet/sales-report/cmd/report"
	"fjacquet/sales-report/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(generate.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
