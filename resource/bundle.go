package resource

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/codes"
	"github.com/gofhir/model/constraint"
	"github.com/gofhir/model/datatype"
	"github.com/gofhir/model/walk"
)

// Bundle is a container for a collection of resources.
type Bundle struct {
	Base
	Identifier *datatype.Identifier              `fhir:"identifier"`
	Type       datatype.CodeOf[codes.BundleType] `fhir:"type"`
	Timestamp  datatype.Instant                  `fhir:"timestamp"`
	Total      datatype.UnsignedInt              `fhir:"total"`
	Link       []BundleLink                      `fhir:"link"`
	Entry      []BundleEntry                     `fhir:"entry"`
}

// BundleLink is a link related to the bundle or an entry.
type BundleLink struct {
	datatype.BackboneElement
	Relation datatype.String `fhir:"relation"`
	URL      datatype.URI    `fhir:"url"`
}

// BundleEntry is one entry of a bundle.
type BundleEntry struct {
	datatype.BackboneElement
	Link     []BundleLink         `fhir:"link"`
	FullURL  datatype.URI         `fhir:"fullUrl"`
	Resource Resource             `fhir:"resource"`
	Search   *BundleEntrySearch   `fhir:"search"`
	Request  *BundleEntryRequest  `fhir:"request"`
	Response *BundleEntryResponse `fhir:"response"`
}

// BundleEntrySearch is search related information for an entry.
type BundleEntrySearch struct {
	datatype.BackboneElement
	Mode  datatype.CodeOf[codes.SearchEntryMode] `fhir:"mode"`
	Score datatype.Decimal                       `fhir:"score"`
}

// BundleEntryRequest is the request of a transaction or batch entry.
type BundleEntryRequest struct {
	datatype.BackboneElement
	Method          datatype.CodeOf[codes.HTTPVerb] `fhir:"method"`
	URL             datatype.URI                    `fhir:"url"`
	IfNoneMatch     datatype.String                 `fhir:"ifNoneMatch"`
	IfModifiedSince datatype.Instant                `fhir:"ifModifiedSince"`
	IfMatch         datatype.String                 `fhir:"ifMatch"`
	IfNoneExist     datatype.String                 `fhir:"ifNoneExist"`
}

// BundleEntryResponse is the result of a transaction or batch entry.
type BundleEntryResponse struct {
	datatype.BackboneElement
	Status       datatype.String  `fhir:"status"`
	Location     datatype.URI     `fhir:"location"`
	Etag         datatype.String  `fhir:"etag"`
	LastModified datatype.Instant `fhir:"lastModified"`
	Outcome      Resource         `fhir:"outcome"`
}

func (*Bundle) ResourceType() string { return "Bundle" }

// Invariants returns nothing: the bundle rules are checked by Walk.
func (b *Bundle) Invariants() []constraint.Invariant { return nil }

func (b *Bundle) nested() []Located {
	var out []Located
	for i := range b.Entry {
		e := &b.Entry[i]
		if e.Resource != nil {
			out = append(out, Located{Path: fmt.Sprintf("entry[%d].resource", i), Resource: e.Resource})
		}
		if e.Response != nil && e.Response.Outcome != nil {
			out = append(out, Located{Path: fmt.Sprintf("entry[%d].response.outcome", i), Resource: e.Response.Outcome})
		}
	}
	return out
}

func (b *Bundle) Walk(w *walk.Walker) {
	walkBase(w, &b.Base)
	w.Require("type", !b.Type.IsZero())

	typ, _ := b.Type.Get()
	searchset := typ == codes.BundleTypeSearchset
	history := typ == codes.BundleTypeHistory
	needsRequest := typ == codes.BundleTypeBatch || typ == codes.BundleTypeTransaction || history
	needsResponse := typ == codes.BundleTypeBatchResponse || typ == codes.BundleTypeTransactionResponse || history

	w.Invariant(b.Total.IsZero() || searchset || history, "bdl-1", fhirmodel.SeverityError,
		"total only when a search or history")

	searchOK, requestOK, responseOK := true, true, true
	for i := range b.Entry {
		e := &b.Entry[i]
		searchOK = searchOK && (e.Search == nil || searchset)
		requestOK = requestOK && (e.Request != nil) == needsRequest
		responseOK = responseOK && (e.Response != nil) == needsResponse
	}
	w.Invariant(searchOK, "bdl-2", fhirmodel.SeverityError, "entry.search only when a search")
	w.Invariant(requestOK, "bdl-3", fhirmodel.SeverityError,
		"entry.request mandatory for batch/transaction/history, otherwise prohibited")
	w.Invariant(responseOK, "bdl-4", fhirmodel.SeverityError,
		"entry.response mandatory for batch-response/transaction-response/history, otherwise prohibited")
	w.Invariant(history || uniqueFullURLs(b.Entry), "bdl-7", fhirmodel.SeverityError,
		"FullUrl must be unique in a bundle, or else entries with the same fullUrl must have different meta.versionId (except in history bundles)")

	if typ == codes.BundleTypeDocument {
		w.Invariant(b.Identifier != nil && !b.Identifier.System.IsZero() && !b.Identifier.Value.IsZero(),
			"bdl-9", fhirmodel.SeverityError, "A document must have an identifier with a system and a value")
		w.Invariant(!b.Timestamp.IsZero(), "bdl-10", fhirmodel.SeverityError, "A document must have a date")
	}

	datatype.WalkFields(w, b)
}

func (e *BundleEntry) Walk(w *walk.Walker) {
	w.Invariant(e.Resource != nil || e.Request != nil || e.Response != nil, "bdl-5", fhirmodel.SeverityError,
		"must be a resource unless there's a request or response")
	full, _ := e.FullURL.Get()
	w.Invariant(!strings.Contains(full, "/_history/"), "bdl-8", fhirmodel.SeverityError,
		"fullUrl cannot be a version specific reference")
	datatype.WalkFields(w, e)
}

func (r *BundleEntryRequest) Walk(w *walk.Walker) {
	w.Require("method", !r.Method.IsZero())
	w.Require("url", !r.URL.IsZero())
	datatype.WalkFields(w, r)
}

func (r *BundleEntryResponse) Walk(w *walk.Walker) {
	w.Require("status", !r.Status.IsZero())
	datatype.WalkFields(w, r)
}

func (l *BundleLink) Walk(w *walk.Walker) {
	w.Require("relation", !l.Relation.IsZero())
	w.Require("url", !l.URL.IsZero())
	datatype.WalkFields(w, l)
}

func uniqueFullURLs(entries []BundleEntry) bool {
	seen := make(map[string]string, len(entries))
	for i := range entries {
		full, ok := entries[i].FullURL.Get()
		if !ok {
			continue
		}
		version := ""
		if r := entries[i].Resource; r != nil {
			version = versionID(r)
		}
		if prev, dup := seen[full]; dup && prev == version {
			return false
		}
		seen[full] = version
	}
	return true
}

func versionID(r Resource) string {
	type metaHolder interface{ meta() *datatype.Meta }
	m, ok := r.(metaHolder)
	if !ok || m.meta() == nil {
		return ""
	}
	v, _ := m.meta().VersionID.Get()
	return v
}

func (b *Base) meta() *datatype.Meta { return b.Meta }

// NewCollection builds a collection bundle holding rs. Every entry gets a urn:uuid
// fullUrl. Records without an id are cloned and given the entry's uuid as id, so
// the caller's records are left untouched.
func NewCollection(rs ...Resource) (*Bundle, error) {
	b := &Bundle{
		Type:      datatype.NewCodeOf(codes.BundleTypeCollection),
		Timestamp: datatype.NewInstant(time.Now().UTC().Format(time.RFC3339)),
		Entry:     make([]BundleEntry, 0, len(rs)),
	}
	for _, r := range rs {
		id := uuid.NewString()
		if r.ResourceID() == "" {
			c, err := Clone(r)
			if err != nil {
				return nil, err
			}
			if err := c.AssignID(id); err != nil {
				return nil, err
			}
			r = c
		}
		b.Entry = append(b.Entry, BundleEntry{
			FullURL:  datatype.NewURI("urn:uuid:" + id),
			Resource: r,
		})
	}
	return b, nil
}

func (b Bundle) MarshalJSON() ([]byte, error) { return datatype.Marshal(&b) }

func (b *Bundle) UnmarshalJSON(data []byte) error { return datatype.Unmarshal(data, b) }
