// Package assistant wraps the generative model used for price estimates and
// search-to-category hints. Every failure degrades to a fixed fallback; the
// caller never sees an error.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

const EstimateFallback = "Não foi possível gerar uma estimativa automática agora."

var ErrUnavailable = errors.New("assistant unavailable")

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Unavailable is the generator used when no model is configured.
type Unavailable struct{}

func (Unavailable) Generate(context.Context, string) (string, error) {
	return "", ErrUnavailable
}

type Service struct {
	gen     Generator
	log     *zap.Logger
	timeout time.Duration
}

func NewService(gen Generator, log *zap.Logger) *Service {
	if gen == nil {
		gen = Unavailable{}
	}
	return &Service{gen: gen, log: log, timeout: 15 * time.Second}
}

// Estimate asks for a rough price and duration for a service in the region.
func (s *Service) Estimate(ctx context.Context, service, details string) string {
	prompt := fmt.Sprintf(
		"Com base no serviço de %q e nos detalhes %q, dê uma estimativa rápida de preço (em Reais) e tempo necessário no Vale do Ribeira. Responda em formato amigável para um cliente brasileiro.",
		service, details,
	)
	text, err := s.generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		s.log.Warn("estimate fallback", zap.String("service", service), zap.Error(err))
		return EstimateFallback
	}
	return strings.TrimSpace(text)
}

// Classify maps a free-text search to service category names.
func (s *Service) Classify(ctx context.Context, query string) []string {
	prompt := fmt.Sprintf(
		"O usuário busca por: %q. Identifique as categorias de serviços domésticos relacionadas a isso (ex: Hidráulica, Elétrica, Pintura). Retorne apenas os nomes das categorias separados por vírgula.",
		query,
	)
	text, err := s.generate(ctx, prompt)
	if err != nil {
		s.log.Warn("classify fallback", zap.String("query", query), zap.Error(err))
		return []string{}
	}
	return splitCategories(text)
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.gen.Generate(ctx, prompt)
}

func splitCategories(text string) []string {
	out := []string{}
	for _, part := range strings.Split(text, ",") {
		if part = strings.Trim(strings.TrimSpace(part), ".\"'"); part != "" {
			out = append(out, part)
		}
	}
	return out
}
