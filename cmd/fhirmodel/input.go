package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// input is one named source of records.
type input struct {
	name string
	data []byte
	err  error
}

// readInputs expands glob patterns and reads every file. "-" reads stdin once.
func (a *app) readInputs(args []string) []input {
	var out []input
	for _, arg := range args {
		if arg == "-" {
			data, err := io.ReadAll(a.stdin)
			out = append(out, input{name: "stdin", data: data, err: err})
			continue
		}

		matches, err := filepath.Glob(arg)
		if err != nil {
			out = append(out, input{name: arg, err: fmt.Errorf("bad pattern: %w", err)})
			continue
		}
		if len(matches) == 0 {
			out = append(out, input{name: arg, err: fmt.Errorf("no files match pattern")})
			continue
		}
		for _, m := range matches {
			data, err := os.ReadFile(m)
			out = append(out, input{name: m, data: data, err: err})
		}
	}
	return out
}

func isNDJSON(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".ndjson" || ext == ".jsonl"
}
