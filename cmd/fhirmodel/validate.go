package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/config"
	"github.com/gofhir/model/engine"
	"github.com/gofhir/model/stream"
	"github.com/gofhir/model/terminology"
)

// ValidationOutput is the JSON form of the outcome for one record.
type ValidationOutput struct {
	Resource     string        `json:"resource"`
	ResourceType string        `json:"resourceType,omitempty"`
	Valid        bool          `json:"valid"`
	Errors       int           `json:"errors"`
	Warnings     int           `json:"warnings"`
	Info         int           `json:"info"`
	Truncated    bool          `json:"truncated,omitempty"`
	Issues       []IssueOutput `json:"issues,omitempty"`
	Duration     string        `json:"duration,omitempty"`
}

// IssueOutput is the JSON form of a single issue.
type IssueOutput struct {
	Severity    string   `json:"severity"`
	Code        string   `json:"code"`
	Diagnostics string   `json:"diagnostics"`
	Expression  []string `json:"expression,omitempty"`
	Constraint  string   `json:"constraint,omitempty"`
}

func (a *app) validateCmd() *cobra.Command {
	var noInvariants bool
	cmd := &cobra.Command{
		Use:   "validate [file|-]...",
		Short: "Validate records, reporting every violation",
		Long: `Validate parses each input and reports every violation it finds.

Inputs may be files, glob patterns or "-" for stdin. Files ending in .ndjson or
.jsonl hold one record per line. Exits with status 1 if any input fails to parse
or has an error issue.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("no-invariants") {
				a.cfg.Invariants = !noInvariants
			}
			return a.validate(cmd.Context(), args)
		},
	}

	flags := cmd.Flags()
	flags.StringP("output", "o", "text", "output format: text, json")
	flags.Bool("strict-codes", false, "report unknown codes as errors")
	flags.StringSlice("codesystem", nil, "CodeSystem, ValueSet or Bundle JSON file with additional known codes")
	flags.Int("max-issues", 0, "stop collecting issues after this many per record (0 = unlimited)")
	flags.Int("workers", 0, "parallel workers for NDJSON inputs (0 = one per CPU)")
	flags.BoolVar(&noInvariants, "no-invariants", false, "skip FHIRPath invariants")

	for key, name := range map[string]string{
		config.KeyOutput:      "output",
		config.KeyStrictCodes: "strict-codes",
		config.KeyCodeSystems: "codesystem",
		config.KeyMaxIssues:   "max-issues",
		config.KeyWorkers:     "workers",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}
	return cmd
}

func (a *app) newValidator() (*engine.Validator, error) {
	opts := a.cfg.Options()
	if len(a.cfg.CodeSystems) > 0 {
		reg := terminology.NewRegistry()
		for _, path := range a.cfg.CodeSystems {
			stats, err := reg.LoadFile(strings.TrimSpace(path))
			if err != nil {
				return nil, fmt.Errorf("load code system %s: %w", path, err)
			}
			a.log.Info("Loaded %s: %d code systems, %d value sets, %d failed",
				path, stats.CodeSystemsLoaded, stats.ValueSetsLoaded, stats.Errors)
		}
		opts = append(opts, fhirmodel.WithTerminology(reg))
	}
	v := engine.New(opts...)
	v.SetLogger(a.log)
	return v, nil
}

func (a *app) validate(ctx context.Context, args []string) error {
	v, err := a.newValidator()
	if err != nil {
		return err
	}

	inputs := a.readInputs(args)
	a.log.Info("Validating %d input(s)", len(inputs))

	failed := false
	var outputs []ValidationOutput
	for _, in := range inputs {
		var outs []ValidationOutput
		switch {
		case in.err != nil:
			outs = []ValidationOutput{failure(in.name, in.err)}
		case isNDJSON(in.name):
			outs = a.validateNDJSON(ctx, v, in)
		default:
			outs = []ValidationOutput{validateOne(ctx, v, in.name, in.data)}
		}
		for _, o := range outs {
			failed = failed || !o.Valid
			if a.cfg.Output == "text" {
				printText(a.stdout, o)
			}
		}
		outputs = append(outputs, outs...)
	}

	if a.cfg.Output == "json" {
		out, err := gojson.MarshalIndent(outputs, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, string(out))
	}

	m := v.Metrics()
	a.log.Info("Done: %d parsed, %d parse failures, %d validations, %.0f%% valid",
		m.ParsesTotal(), m.ParseFailures(), m.ValidationsTotal(), m.ValidationRate()*100)
	if failed {
		return errFailed
	}
	return nil
}

func (a *app) validateNDJSON(ctx context.Context, v *engine.Validator, in input) []ValidationOutput {
	var outs []ValidationOutput
	results := stream.NewDecoder(v).NDJSON(ctx, bytes.NewReader(in.data))
	for r := range results {
		name := fmt.Sprintf("%s:%d", in.name, r.Index+1)
		switch {
		case r.Index < 0:
			outs = append(outs, failure(in.name, r.Err))
		case r.Err != nil:
			outs = append(outs, failure(name, r.Err))
		default:
			o := fromResult(name, r.Result)
			o.ResourceType = r.ResourceType()
			outs = append(outs, o)
		}
	}
	return outs
}

func validateOne(ctx context.Context, v *engine.Validator, name string, data []byte) ValidationOutput {
	start := time.Now()
	r, result, err := v.ValidateJSON(ctx, data)
	if err != nil {
		return failure(name, err)
	}
	o := fromResult(name, result)
	o.ResourceType = r.ResourceType()
	o.Duration = time.Since(start).Round(time.Microsecond).String()
	return o
}

func fromResult(name string, result *fhirmodel.Result) ValidationOutput {
	o := ValidationOutput{
		Resource:  name,
		Valid:     result.Valid(),
		Errors:    result.ErrorCount(),
		Warnings:  result.WarningCount(),
		Info:      result.InfoCount(),
		Truncated: result.Truncated,
	}
	for _, iss := range result.Issues {
		o.Issues = append(o.Issues, IssueOutput{
			Severity:    string(iss.Severity),
			Code:        string(iss.Code),
			Diagnostics: iss.Diagnostics,
			Expression:  iss.Expression,
			Constraint:  iss.ConstraintKey,
		})
	}
	return o
}

// failure reports an input that could not be parsed as a single fatal issue.
func failure(name string, err error) ValidationOutput {
	return ValidationOutput{
		Resource: name,
		Errors:   1,
		Issues: []IssueOutput{{
			Severity:    string(fhirmodel.SeverityFatal),
			Code:        string(fhirmodel.IssueTypeStructure),
			Diagnostics: err.Error(),
		}},
	}
}
