// Package stream decodes and validates the records of a Bundle or an NDJSON stream
// entry by entry, in parallel, reporting results in input order.
package stream

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/engine"
	"github.com/gofhir/model/resource"
	"github.com/gofhir/model/worker"
)

// maxLine bounds a single NDJSON record.
const maxLine = 64 << 20

// EntryResult is the outcome for one entry of the input.
type EntryResult struct {
	// Index is the position of the entry, or -1 for a failure of the input as a whole
	Index int

	// FullURL is the fullUrl of a bundle entry, if present
	FullURL string

	// Resource is the decoded record, nil when decoding failed or the entry had none
	Resource resource.Resource

	// Result contains the validation issues of the record
	Result *fhirmodel.Result

	// Err is set when the entry could not be decoded. Other entries are unaffected.
	Err error
}

// ResourceType returns the type of the decoded record, or "".
func (e *EntryResult) ResourceType() string {
	if e.Resource == nil {
		return ""
	}
	return e.Resource.ResourceType()
}

// ValidateFunc decodes and validates one record. engine.Validator.ValidateJSON has
// this signature.
type ValidateFunc func(ctx context.Context, data []byte) (resource.Resource, *fhirmodel.Result, error)

// Decoder validates the records of a stream.
type Decoder struct {
	validate ValidateFunc
	workers  int
}

// NewDecoder creates a decoder validating with v, using v's worker count.
func NewDecoder(v *engine.Validator) *Decoder {
	return &Decoder{validate: v.ValidateJSON, workers: v.Options().WorkerCount}
}

// NewDecoderFunc creates a decoder around any validation function.
func NewDecoderFunc(fn ValidateFunc) *Decoder {
	return &Decoder{validate: fn, workers: 4}
}

// WithWorkerCount sets the number of parallel workers.
func (d *Decoder) WithWorkerCount(n int) *Decoder {
	if n > 0 {
		d.workers = n
	}
	return d
}

type item struct {
	index   int
	fullURL string
	raw     json.RawMessage
	prefix  string
	err     error
}

func (d *Decoder) run(ctx context.Context, read func(ctx context.Context, items chan<- item)) <-chan *EntryResult {
	items := make(chan item, d.workers)
	go func() {
		defer close(items)
		read(ctx, items)
	}()
	return worker.NewPool(d.process, d.workers).Run(ctx, items)
}

func (d *Decoder) process(ctx context.Context, it item) *EntryResult {
	res := &EntryResult{Index: it.index, FullURL: it.fullURL, Err: it.err}
	if it.err != nil || len(it.raw) == 0 || bytes.Equal(it.raw, []byte("null")) {
		return res
	}
	r, result, err := d.validate(ctx, it.raw)
	if err != nil {
		res.Err = fhirmodel.PrefixPath(it.prefix, err)
		return res
	}
	res.Resource, res.Result = r, result
	return res
}

func send(ctx context.Context, items chan<- item, it item) bool {
	select {
	case items <- it:
		return true
	case <-ctx.Done():
		return false
	}
}

// Bundle reads a Bundle from r and validates every entry.resource. Entries are read one
// at a time, so the bundle is never held in memory as a whole. When resourceType is
// missing, or only follows the entries and is not "Bundle", the entries already read are
// reported and the stream ends with a failure.
func (d *Decoder) Bundle(ctx context.Context, r io.Reader) <-chan *EntryResult {
	return d.run(ctx, func(ctx context.Context, items chan<- item) {
		fatal := func(format string, args ...any) {
			send(ctx, items, item{index: -1, err: fmt.Errorf(format, args...)})
		}
		dec := json.NewDecoder(r)

		tok, err := dec.Token()
		if err != nil {
			fatal("failed to read bundle: %w", err)
			return
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '{' {
			fatal("expected object start, got %v", tok)
			return
		}

		seenType := false
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				fatal("failed to read field: %w", err)
				return
			}
			name, _ := tok.(string)
			switch name {
			case "resourceType":
				var rt string
				if err := dec.Decode(&rt); err != nil || rt != "Bundle" {
					fatal("not a Bundle: resourceType %q", rt)
					return
				}
				seenType = true
			case "entry":
				// Entries stream as they come; a resourceType after them is still checked.
				if !readEntries(ctx, dec, items, fatal) {
					return
				}
			default:
				var skip json.RawMessage
				if err := dec.Decode(&skip); err != nil {
					fatal("failed to skip field %s: %w", name, err)
					return
				}
			}
		}
		if _, err := dec.Token(); err != nil {
			fatal("failed to read bundle end: %w", err)
			return
		}
		if !seenType {
			fatal("not a Bundle: missing resourceType")
		}
	})
}

func readEntries(ctx context.Context, dec *json.Decoder, items chan<- item, fatal func(string, ...any)) bool {
	tok, err := dec.Token()
	if err != nil {
		fatal("failed to read entry array: %w", err)
		return false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		fatal("expected array start, got %v", tok)
		return false
	}

	for i := 0; dec.More(); i++ {
		var entry struct {
			FullURL  string          `json:"fullUrl"`
			Resource json.RawMessage `json:"resource"`
		}
		it := item{index: i, prefix: fmt.Sprintf("entry[%d].resource", i)}
		if err := dec.Decode(&entry); err != nil {
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				fatal("failed to decode entry %d: %w", i, err)
				return false
			}
			it.err = fhirmodel.NewParseError(fmt.Sprintf("entry[%d]", i), err)
		}
		it.fullURL, it.raw = entry.FullURL, entry.Resource
		if !send(ctx, items, it) {
			return false
		}
	}
	if _, err := dec.Token(); err != nil {
		fatal("failed to read entry array end: %w", err)
		return false
	}
	return true
}

// NDJSON reads one record per line from r and validates each. Blank lines are skipped
// and do not count towards Index. A malformed line fails that entry only.
func (d *Decoder) NDJSON(ctx context.Context, r io.Reader) <-chan *EntryResult {
	return d.run(ctx, func(ctx context.Context, items chan<- item) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64<<10), maxLine)
		i := 0
		for sc.Scan() {
			line := bytes.TrimSpace(sc.Bytes())
			if len(line) == 0 {
				continue
			}
			raw := make([]byte, len(line))
			copy(raw, line)
			if !send(ctx, items, item{index: i, raw: raw}) {
				return
			}
			i++
		}
		if err := sc.Err(); err != nil {
			send(ctx, items, item{index: -1, err: fmt.Errorf("failed to read ndjson: %w", err)})
		}
	})
}
