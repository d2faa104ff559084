package main

import (
	"fmt"
	"io"
	"strings"
)

func printText(w io.Writer, o ValidationOutput) {
	status := "VALID"
	if !o.Valid {
		status = "INVALID"
	}

	fmt.Fprintf(w, "== %s ==\n", o.Resource)
	if o.ResourceType != "" {
		fmt.Fprintf(w, "Resource: %s\n", o.ResourceType)
	}
	fmt.Fprintf(w, "Status: %s\n", status)
	fmt.Fprintf(w, "Errors: %d, Warnings: %d, Info: %d\n", o.Errors, o.Warnings, o.Info)
	if o.Duration != "" {
		fmt.Fprintf(w, "Duration: %s\n", o.Duration)
	}

	if len(o.Issues) > 0 {
		fmt.Fprintln(w, "\nIssues:")
		for _, iss := range o.Issues {
			location := ""
			if len(iss.Expression) > 0 {
				location = " @ " + strings.Join(iss.Expression, ", ")
			}
			code := iss.Code
			if iss.Constraint != "" {
				code += ":" + iss.Constraint
			}
			fmt.Fprintf(w, "  %s [%s] %s%s\n", severityLabel(iss.Severity), code, iss.Diagnostics, location)
		}
	}
	if o.Truncated {
		fmt.Fprintln(w, "  (issue limit reached, further issues not reported)")
	}
	fmt.Fprintln(w)
}

func severityLabel(severity string) string {
	switch severity {
	case "fatal":
		return "FATAL"
	case "error":
		return "ERROR"
	case "warning":
		return "WARN "
	default:
		return "INFO "
	}
}
