package tone

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type Service interface {
	ListTones(ctx context.Context) []Tone
	GetTone(ctx context.Context, id string) (Tone, error)
	Render(ctx context.Context, id string) ([]byte, error)
}

type service struct {
	rendered sync.Map // map[string][]byte
	logger   *zap.Logger
}

func NewService(logger *zap.Logger) Service {
	return &service{logger: logger}
}

func (s *service) ListTones(ctx context.Context) []Tone {
	return Catalog()
}

func (s *service) GetTone(ctx context.Context, id string) (Tone, error) {
	return Lookup(id)
}

// Render returns the WAV bytes for a catalog tone. Synthesis is
// deterministic, so renders are cached per tone ID for the process lifetime.
func (s *service) Render(ctx context.Context, id string) ([]byte, error) {
	if cached, ok := s.rendered.Load(id); ok {
		return cached.([]byte), nil
	}

	t, err := Lookup(id)
	if err != nil {
		return nil, err
	}

	data := Synthesize(t.Frequency, t.Duration)
	s.rendered.Store(id, data)

	s.logger.Info("Rendered alarm tone",
		zap.String("tone_id", id),
		zap.Float64("frequency_hz", t.Frequency),
		zap.Int("bytes", len(data)))

	return data, nil
}
