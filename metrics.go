package fhirmodel

import (
	"errors"
	"sync/atomic"
	"time"
)

// Metrics tracks parse and validation counters using lock-free atomic operations.
// All methods are safe for concurrent use.
type Metrics struct {
	// Parse counts
	parsesTotal     atomic.Uint64
	parseFailures   atomic.Uint64
	choiceConflicts atomic.Uint64

	// Validation counts
	validationsTotal atomic.Uint64
	validationsValid atomic.Uint64

	// Timing (stored as nanoseconds)
	validationTimeTotal atomic.Uint64
	validationTimeMin   atomic.Uint64
	validationTimeMax   atomic.Uint64

	// Invariant evaluations
	invariantsEvaluated atomic.Uint64
	invariantsFailed    atomic.Uint64

	// Expression cache
	cacheHits   atomic.Uint64
	cacheMisses atomic.Uint64

	// Issue counts by severity
	errorsTotal   atomic.Uint64
	warningsTotal atomic.Uint64
	infosTotal    atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Initialize min to max uint64 so first value becomes the minimum
	m.validationTimeMin.Store(^uint64(0))
	return m
}

// --- Recording Methods ---

// RecordParse records a decode attempt. A nil err counts as success.
func (m *Metrics) RecordParse(err error) {
	m.parsesTotal.Add(1)
	if err == nil {
		return
	}
	m.parseFailures.Add(1)
	if errors.Is(err, ErrChoiceConflict) {
		m.choiceConflicts.Add(1)
	}
}

// RecordValidation records a completed validation.
func (m *Metrics) RecordValidation(duration time.Duration, valid bool) {
	m.validationsTotal.Add(1)
	if valid {
		m.validationsValid.Add(1)
	}

	ns := uint64(duration.Nanoseconds()) //nolint:gosec // durations are non-negative
	m.validationTimeTotal.Add(ns)

	for {
		old := m.validationTimeMin.Load()
		if ns >= old || m.validationTimeMin.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.validationTimeMax.Load()
		if ns <= old || m.validationTimeMax.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordInvariant records one invariant evaluation.
func (m *Metrics) RecordInvariant(passed bool) {
	m.invariantsEvaluated.Add(1)
	if !passed {
		m.invariantsFailed.Add(1)
	}
}

// RecordCacheHit records an expression cache hit.
func (m *Metrics) RecordCacheHit() {
	m.cacheHits.Add(1)
}

// RecordCacheMiss records an expression cache miss.
func (m *Metrics) RecordCacheMiss() {
	m.cacheMisses.Add(1)
}

// RecordIssue records an issue based on severity.
func (m *Metrics) RecordIssue(severity IssueSeverity) {
	switch severity {
	case SeverityError, SeverityFatal:
		m.errorsTotal.Add(1)
	case SeverityWarning:
		m.warningsTotal.Add(1)
	case SeverityInformation:
		m.infosTotal.Add(1)
	}
}

// RecordResult records every issue of a result together with its duration.
func (m *Metrics) RecordResult(r *Result, duration time.Duration) {
	for _, issue := range r.Issues {
		m.RecordIssue(issue.Severity)
	}
	m.RecordValidation(duration, r.Valid())
}

// --- Query Methods ---

// ParsesTotal returns the number of decode attempts.
func (m *Metrics) ParsesTotal() uint64 { return m.parsesTotal.Load() }

// ParseFailures returns the number of failed decodes.
func (m *Metrics) ParseFailures() uint64 { return m.parseFailures.Load() }

// ChoiceConflicts returns the number of decodes rejected for a choice conflict.
func (m *Metrics) ChoiceConflicts() uint64 { return m.choiceConflicts.Load() }

// ValidationsTotal returns the total number of validations performed.
func (m *Metrics) ValidationsTotal() uint64 { return m.validationsTotal.Load() }

// ValidationsValid returns the number of validations without errors.
func (m *Metrics) ValidationsValid() uint64 { return m.validationsValid.Load() }

// ValidationRate returns the share of valid validations (0.0 to 1.0).
func (m *Metrics) ValidationRate() float64 {
	total := m.validationsTotal.Load()
	if total == 0 {
		return 0
	}
	return float64(m.validationsValid.Load()) / float64(total)
}

// AverageValidationTime returns the average validation duration.
func (m *Metrics) AverageValidationTime() time.Duration {
	total := m.validationsTotal.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(m.validationTimeTotal.Load() / total) //nolint:gosec // nanoseconds within int64 range
}

// MinValidationTime returns the minimum validation duration.
func (m *Metrics) MinValidationTime() time.Duration {
	minVal := m.validationTimeMin.Load()
	if minVal == ^uint64(0) {
		return 0
	}
	return time.Duration(minVal) //nolint:gosec // nanoseconds within int64 range
}

// MaxValidationTime returns the maximum validation duration.
func (m *Metrics) MaxValidationTime() time.Duration {
	return time.Duration(m.validationTimeMax.Load()) //nolint:gosec // nanoseconds within int64 range
}

// InvariantsEvaluated returns the number of invariant evaluations.
func (m *Metrics) InvariantsEvaluated() uint64 { return m.invariantsEvaluated.Load() }

// InvariantsFailed returns the number of invariant evaluations that did not hold.
func (m *Metrics) InvariantsFailed() uint64 { return m.invariantsFailed.Load() }

// CacheHitRate returns the expression cache hit rate (0.0 to 1.0).
func (m *Metrics) CacheHitRate() float64 {
	hits := m.cacheHits.Load()
	total := hits + m.cacheMisses.Load()
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// ErrorsTotal returns the total error issues found.
func (m *Metrics) ErrorsTotal() uint64 { return m.errorsTotal.Load() }

// WarningsTotal returns the total warning issues found.
func (m *Metrics) WarningsTotal() uint64 { return m.warningsTotal.Load() }

// InfosTotal returns the total informational issues found.
func (m *Metrics) InfosTotal() uint64 { return m.infosTotal.Load() }

// --- Export Methods ---

// Snapshot represents a point-in-time snapshot of all metrics.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`

	ParsesTotal     uint64 `json:"parses_total"`
	ParseFailures   uint64 `json:"parse_failures"`
	ChoiceConflicts uint64 `json:"choice_conflicts"`

	ValidationsTotal uint64  `json:"validations_total"`
	ValidationsValid uint64  `json:"validations_valid"`
	ValidationRate   float64 `json:"validation_rate"`

	AvgValidationTimeNs uint64 `json:"avg_validation_time_ns"`
	MinValidationTimeNs uint64 `json:"min_validation_time_ns"`
	MaxValidationTimeNs uint64 `json:"max_validation_time_ns"`

	InvariantsEvaluated uint64 `json:"invariants_evaluated"`
	InvariantsFailed    uint64 `json:"invariants_failed"`

	CacheHits    uint64  `json:"cache_hits"`
	CacheMisses  uint64  `json:"cache_misses"`
	CacheHitRate float64 `json:"cache_hit_rate"`

	ErrorsTotal   uint64 `json:"errors_total"`
	WarningsTotal uint64 `json:"warnings_total"`
	InfosTotal    uint64 `json:"infos_total"`
}

// Snapshot returns a point-in-time snapshot of all metrics.
func (m *Metrics) Snapshot() Snapshot {
	minTime := m.validationTimeMin.Load()
	if minTime == ^uint64(0) {
		minTime = 0
	}
	var avg uint64
	if total := m.validationsTotal.Load(); total > 0 {
		avg = m.validationTimeTotal.Load() / total
	}

	return Snapshot{
		Timestamp:           time.Now(),
		ParsesTotal:         m.parsesTotal.Load(),
		ParseFailures:       m.parseFailures.Load(),
		ChoiceConflicts:     m.choiceConflicts.Load(),
		ValidationsTotal:    m.validationsTotal.Load(),
		ValidationsValid:    m.validationsValid.Load(),
		ValidationRate:      m.ValidationRate(),
		AvgValidationTimeNs: avg,
		MinValidationTimeNs: minTime,
		MaxValidationTimeNs: m.validationTimeMax.Load(),
		InvariantsEvaluated: m.invariantsEvaluated.Load(),
		InvariantsFailed:    m.invariantsFailed.Load(),
		CacheHits:           m.cacheHits.Load(),
		CacheMisses:         m.cacheMisses.Load(),
		CacheHitRate:        m.CacheHitRate(),
		ErrorsTotal:         m.errorsTotal.Load(),
		WarningsTotal:       m.warningsTotal.Load(),
		InfosTotal:          m.infosTotal.Load(),
	}
}

// Export returns metrics as a flat map suitable for external systems.
func (m *Metrics) Export() map[string]any {
	s := m.Snapshot()
	return map[string]any{
		"parses_total":           s.ParsesTotal,
		"parse_failures":         s.ParseFailures,
		"choice_conflicts":       s.ChoiceConflicts,
		"validations_total":      s.ValidationsTotal,
		"validations_valid":      s.ValidationsValid,
		"validation_rate":        s.ValidationRate,
		"avg_validation_time_ns": s.AvgValidationTimeNs,
		"min_validation_time_ns": s.MinValidationTimeNs,
		"max_validation_time_ns": s.MaxValidationTimeNs,
		"invariants_evaluated":   s.InvariantsEvaluated,
		"invariants_failed":      s.InvariantsFailed,
		"cache_hits":             s.CacheHits,
		"cache_misses":           s.CacheMisses,
		"cache_hit_rate":         s.CacheHitRate,
		"errors_total":           s.ErrorsTotal,
		"warnings_total":         s.WarningsTotal,
		"infos_total":            s.InfosTotal,
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.parsesTotal.Store(0)
	m.parseFailures.Store(0)
	m.choiceConflicts.Store(0)
	m.validationsTotal.Store(0)
	m.validationsValid.Store(0)
	m.validationTimeTotal.Store(0)
	m.validationTimeMin.Store(^uint64(0))
	m.validationTimeMax.Store(0)
	m.invariantsEvaluated.Store(0)
	m.invariantsFailed.Store(0)
	m.cacheHits.Store(0)
	m.cacheMisses.Store(0)
	m.errorsTotal.Store(0)
	m.warningsTotal.Store(0)
	m.infosTotal.Store(0)
}
