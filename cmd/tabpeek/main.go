// Command tabpeek previews CSV, TSV and Parquet files in the terminal.
//
// Usage:
//
//	tabpeek [flags] [filepath]
//
// Examples:
//
//	tabpeek data.csv --head
//	tabpeek data.parquet --describe
//	cat data.txt | tabpeek -d ';'
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bjaus/tabpeek/internal/cli"
)

func main() {
	err := cli.Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tabpeek: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
