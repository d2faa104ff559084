package main

import (
	"fmt"
	"text/tabwriter"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/gofhir/model/codes"
)

type codeSetOutput struct {
	Name   string   `json:"name"`
	System string   `json:"system"`
	Codes  []string `json:"codes"`
}

func (a *app) codesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "codes [set]",
		Short: "List the code sets, or the codes of one set",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sets := codes.All()
			if len(args) == 1 {
				s, ok := codes.Lookup(args[0])
				if !ok {
					return fmt.Errorf("unknown code set %q", args[0])
				}
				sets = []codes.Info{s}
			}

			if asJSON {
				out := make([]codeSetOutput, 0, len(sets))
				for _, s := range sets {
					out = append(out, codeSetOutput{Name: s.Name(), System: s.System(), Codes: s.Strings()})
				}
				data, err := gojson.MarshalIndent(out, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(a.stdout, string(data))
				return nil
			}

			if len(args) == 1 {
				fmt.Fprintf(a.stdout, "%s (%s)\n", sets[0].Name(), sets[0].System())
				for _, c := range sets[0].Strings() {
					fmt.Fprintf(a.stdout, "  %s\n", c)
				}
				return nil
			}
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCODES\tSYSTEM")
			for _, s := range sets {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", s.Name(), len(s.Strings()), s.System())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
