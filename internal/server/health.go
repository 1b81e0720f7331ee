package server

import "context"

// HealthService defines behaviour for readiness probes.
type HealthService interface {
	Probe(ctx context.Context) error
}

// Prober is implemented by mail transports that can verify their credential.
type Prober interface {
	Probe(ctx context.Context) error
}

// MailHealthService verifies outbound mail transport availability as part of
// health checks.
type MailHealthService struct {
	Transport Prober
}

// Probe implements the HealthService interface.
func (s MailHealthService) Probe(ctx context.Context) error {
	if s.Transport == nil {
		return nil
	}
	return s.Transport.Probe(ctx)
}
