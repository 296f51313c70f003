// Command gridsql is a minimal driver for exercising Engine.Execute from a
// shell: it is explicitly not the interactive terminal UI spec.md places
// out of scope (no syntax highlighting, no schema browser, no REPL history
// or line editing) — just the smallest thing that can run a statement and
// print its Result, in the spirit of a package's example_test.go.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/gridsql/gridsql"
)

func main() {
	execFlag := flag.String("exec", "", "run a single statement and exit")
	format := flag.String("format", "table", "output format: table, json, yaml")
	verbose := flag.Bool("v", false, "log each query's elapsed time and correlation id to stderr")
	flag.Parse()

	var opts []gridsql.Option
	if *verbose {
		opts = append(opts, gridsql.WithLogger(log.New(os.Stderr, "", log.LstdFlags)))
	}
	eng := gridsql.NewEngine(opts...)

	if *execFlag != "" {
		printResult(eng.Execute(*execFlag), *format)
		return
	}

	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 1024), 4*1024*1024)

	var buf strings.Builder
	for sc.Scan() {
		line := sc.Text()
		buf.WriteString(line)
		buf.WriteString("\n")
		if !strings.Contains(line, ";") {
			continue
		}
		stmt := strings.TrimSpace(buf.String())
		buf.Reset()
		if stmt == "" {
			continue
		}
		printResult(eng.Execute(stmt), *format)
	}
	if err := sc.Err(); err != nil && err != io.EOF {
		fmt.Fprintln(os.Stderr, "read error:", err)
		os.Exit(1)
	}
}

func printResult(res gridsql.Result, format string) {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(res)
	case "yaml":
		out, err := yaml.Marshal(res)
		if err != nil {
			fmt.Fprintln(os.Stderr, "yaml encode error:", err)
			return
		}
		os.Stdout.Write(out)
	default:
		printTable(res)
	}
}

func printTable(res gridsql.Result) {
	if !res.Success {
		fmt.Printf("ERROR: %s\n", res.Error)
		return
	}
	if res.Data == nil {
		fmt.Printf("%s (%s affected)\n", res.Message, humanize.Comma(int64(res.AffectedRows)))
		return
	}
	if len(res.Data) == 0 {
		fmt.Println("(0 rows)")
		return
	}

	cols := columnOrder(res.Data)
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = len(c)
	}
	cellStrings := make([][]string, len(res.Data))
	for r, row := range res.Data {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = cellString(row[c])
			if len(cells[i]) > widths[i] {
				widths[i] = len(cells[i])
			}
		}
		cellStrings[r] = cells
	}

	printRow(cols, widths)
	sep := make([]string, len(cols))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	printRow(sep, widths)
	for _, cells := range cellStrings {
		printRow(cells, widths)
	}
	fmt.Printf("(%s rows)\n", humanize.Comma(int64(len(res.Data))))
}

func columnOrder(rows []gridsql.Row) []string {
	seen := map[string]bool{}
	var cols []string
	for _, row := range rows {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	return cols
}

func cellString(v any) string {
	if v == nil {
		return "NULL"
	}
	if t, ok := v.(time.Time); ok {
		return humanize.Time(t)
	}
	return fmt.Sprintf("%v", v)
}

func printRow(cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprintf("%-*s", widths[i], c)
	}
	fmt.Println(strings.Join(parts, " | "))
}
