package main

import (
	"bufio"
	"bytes"
	"fmt"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/gofhir/model/resource"
)

func (a *app) normalizeCmd() *cobra.Command {
	var indent bool
	cmd := &cobra.Command{
		Use:   "normalize [file|-]...",
		Short: "Re-encode records in canonical form",
		Long: `Normalize parses each input and writes it back out: elements in model order,
primitive sidecars aligned, unknown elements kept. Inputs that fail to parse,
including those with more than one alternative of a choice element, are reported
on stderr and make the command exit with status 1.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, in := range a.readInputs(args) {
				if in.err != nil {
					fmt.Fprintf(a.stderr, "%s: %v\n", in.name, in.err)
					failed = true
					continue
				}
				if isNDJSON(in.name) {
					failed = a.normalizeLines(in) || failed
					continue
				}
				out, err := normalize(in.data, indent)
				if err != nil {
					fmt.Fprintf(a.stderr, "%s: %v\n", in.name, err)
					failed = true
					continue
				}
				fmt.Fprintln(a.stdout, string(out))
			}
			if failed {
				return errFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&indent, "indent", false, "indent the output (ignored for NDJSON inputs)")
	return cmd
}

func (a *app) normalizeLines(in input) bool {
	failed := false
	sc := bufio.NewScanner(bytes.NewReader(in.data))
	sc.Buffer(make([]byte, 0, 64<<10), len(in.data)+1)
	for n := 1; sc.Scan(); n++ {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		out, err := normalize(line, false)
		if err != nil {
			fmt.Fprintf(a.stderr, "%s:%d: %v\n", in.name, n, err)
			failed = true
			continue
		}
		fmt.Fprintln(a.stdout, string(out))
	}
	return failed
}

func normalize(data []byte, indent bool) ([]byte, error) {
	r, err := resource.Parse(data)
	if err != nil {
		return nil, err
	}
	out, err := r.MarshalJSON()
	if err != nil || !indent {
		return out, err
	}
	var buf bytes.Buffer
	if err := gojson.Indent(&buf, out, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
