// Package main provides the CLI entrypoint for row-caster.
//
// row-caster decodes a comma-delimited text file against a YAML field
// manifest and dumps the decoded records:
//
//	row-caster [-strict-int64] [-last-wins] manifest.yaml data.csv
//
// All decoding logic lives in the library packages; this driver only picks
// the files and prints the result.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"row-caster/caster"
	"row-caster/manifest"
	"row-caster/options"
)

func main() {
	strictInt64 := flag.Bool("strict-int64", false, "parse int64 fields as base-10 integers instead of through float64")
	lastWins := flag.Bool("last-wins", false, "accept duplicate header labels, rightmost column wins")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: row-caster [-strict-int64] [-last-wins] <manifest.yaml> <data.csv>")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Arg(1), decodeFlags(*strictInt64, *lastWins)); err != nil {
		fmt.Fprintln(os.Stderr, "row-caster:", err)
		os.Exit(1)
	}
}

func decodeFlags(strictInt64, lastWins bool) options.FlagEnum {
	var flags options.FlagEnum
	if strictInt64 {
		flags |= options.FlagStrictInt64
	}

	if lastWins {
		flags |= options.FlagLastBindingWins
	}

	return flags
}

func run(manifestPath, dataPath string, flags options.FlagEnum) error {
	mf, err := manifest.LoadFile(manifestPath)
	if err != nil {
		return err
	}

	f, err := os.Open(dataPath)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := caster.DecodeWith(f, flags, mf.Descriptors()...)
	if err != nil {
		return err
	}

	fmt.Printf("%d record(s)\n", len(records))
	spew.Dump(records)

	return nil
}
