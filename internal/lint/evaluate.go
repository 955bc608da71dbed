package lint

import (
	"runtime"
	"sync"
)

// Verdict is the evaluation result for a single commit message.
type Verdict struct {
	Header     string
	Violations []Violation
	Valid      bool
}

// Report aggregates the verdicts of one run. Failed preserves the input
// order of the evaluated messages.
type Report struct {
	Failed []Verdict
	Total  int
	Valid  bool
}

// FailedCount returns the number of failing commits in the run.
func (r *Report) FailedCount() int { return len(r.Failed) }

// Evaluate parses a raw commit message and applies the standard rule set.
// Headers matching an exempt pattern (merges, reverts, fixups) are valid
// regardless of grammar.
func Evaluate(raw string, cfg *Config) Verdict {
	header, _ := splitHeader(raw)

	if cfg.Exempt(header) {
		return Verdict{Header: header, Valid: true}
	}

	parsed := Parse(raw)

	var violations []Violation
	for _, rule := range StandardRules() {
		violations = append(violations, rule.Check(parsed, cfg)...)
	}

	return Verdict{
		Header:     header,
		Violations: violations,
		Valid:      len(violations) == 0,
	}
}

// EvaluateAll evaluates a batch of messages. Each message is judged in
// isolation, so the batch runs on a small worker pool; the report is
// reassembled in input order regardless of completion order.
func EvaluateAll(messages []string, cfg *Config) Report {
	verdicts := make([]Verdict, len(messages))

	workers := runtime.NumCPU()
	if workers > len(messages) {
		workers = len(messages)
	}

	if workers <= 1 {
		for i, msg := range messages {
			verdicts[i] = Evaluate(msg, cfg)
		}
	} else {
		indexes := make(chan int)
		var wg sync.WaitGroup
		wg.Add(workers)
		for range workers {
			go func() {
				defer wg.Done()
				for i := range indexes {
					verdicts[i] = Evaluate(messages[i], cfg)
				}
			}()
		}
		for i := range messages {
			indexes <- i
		}
		close(indexes)
		wg.Wait()
	}

	report := Report{Total: len(messages), Valid: true}
	for _, verdict := range verdicts {
		if !verdict.Valid {
			report.Failed = append(report.Failed, verdict)
			report.Valid = false
		}
	}
	return report
}
