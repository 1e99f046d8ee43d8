package top

import "shea/internal/domain"

// tickMsg marks a tick boundary. seq ties it to the refresh generation
// that scheduled it; a forced refresh bumps the generation so a stale tick
// falls through without re-querying.
type tickMsg struct {
	seq int
}

type refreshMsg struct {
	seq     int
	snap    domain.SystemSnapshot
	records []domain.ProcessRecord
	err     error
}
