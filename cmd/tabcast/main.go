// Package main provides the CLI entrypoint for tabcast.
//
// tabcast gives scripts ad-hoc structured access to delimited text
// files: it detects the file's charset and delimiter, parses rows into
// typed cells, optionally applies a column filter, and prints the
// result or saves it back out.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"tabcast/cell"
	"tabcast/table"
)

func main() {
	where := flag.String("where", "", "filter rows: column,operator,value (e.g. age,>=,18)")
	out := flag.String("out", "", "write the result to this file instead of printing")
	noHeader := flag.Bool("no-header", false, "treat the first record as data")
	raw := flag.Bool("raw", false, "keep every field as its exact raw string")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tabcast [flags] <file>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *where, *out, *noHeader, *raw); err != nil {
		fmt.Fprintln(os.Stderr, "tabcast:", err)
		os.Exit(1)
	}
}

func run(path, where, out string, noHeader, raw bool) error {
	var opts []table.Option
	if noHeader {
		opts = append(opts, table.WithoutHeader())
	}
	if raw {
		opts = append(opts, table.WithoutAutoCast())
	}

	t, err := table.Load(path, opts...)
	if err != nil {
		return err
	}

	if where != "" {
		t, err = applyFilter(t, where)
		if err != nil {
			return err
		}
	}

	if out != "" {
		return t.SaveTo(out)
	}

	dump(t)

	return nil
}

// applyFilter parses a column,operator,value clause and filters t by it.
// The column part is a positional index when it parses as a number,
// otherwise a header name; the value goes through the same auto-casting
// as loaded cells so "18" compares numerically.
func applyFilter(t *table.Table, clause string) (*table.Table, error) {
	parts := strings.SplitN(clause, ",", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("bad -where clause %q, want column,operator,value", clause)
	}

	op, err := table.ParseOp(parts[1])
	if err != nil {
		return nil, err
	}

	var col table.ColumnID
	if n, err := strconv.Atoi(parts[0]); err == nil {
		col = table.Index(n)
	} else {
		col = table.Name(parts[0])
	}

	return t.FilterByColumn(col, op, cell.Cast(parts[2]))
}

func dump(t *table.Table) {
	fmt.Println(t)

	if h := t.Header(); len(h) > 0 {
		fmt.Println(strings.Join(h, "\t"))
	}

	for _, row := range t.Rows() {
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = v.String()
		}
		fmt.Println(strings.Join(fields, "\t"))
	}
}
