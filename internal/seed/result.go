// Package seed publishes a normalized game log into Postgres.
package seed

import "fmt"

// SeedResult tracks counts and errors from a publish run.
type SeedResult struct {
	Inserted int
	Updated  int
	Skipped  int
	Errors   []string
}

// Add merges another SeedResult into this one.
func (r *SeedResult) Add(other SeedResult) {
	r.Inserted += other.Inserted
	r.Updated += other.Updated
	r.Skipped += other.Skipped
	r.Errors = append(r.Errors, other.Errors...)
}

// AddErrorf records a formatted error message.
func (r *SeedResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the publish run.
func (r *SeedResult) Summary() string {
	return fmt.Sprintf(
		"inserted=%d updated=%d skipped=%d errors=%d",
		r.Inserted, r.Updated, r.Skipped, len(r.Errors),
	)
}
