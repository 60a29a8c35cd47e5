package testutil

import (
	"context"
	"sync"

	"clubhouse/internal/ports/output"
)

// Publisher records published messages. Err, when set, is returned from every publish.
type Publisher struct {
	mu   sync.Mutex
	msgs []output.RegistrationAdmitted
	Err  error
}

func (p *Publisher) PublishAdmitted(_ context.Context, msg output.RegistrationAdmitted) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.msgs = append(p.msgs, msg)
	return nil
}

func (p *Publisher) Messages() []output.RegistrationAdmitted {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]output.RegistrationAdmitted(nil), p.msgs...)
}
