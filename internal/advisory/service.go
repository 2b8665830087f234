package advisory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mmynk/housepoints/internal/metrics"
)

const (
	// FallbackSummary is returned when the generation call fails.
	FallbackSummary = "O sucesso é a soma de pequenos esforços repetidos dia após dia!"
	// EmptySummary is returned when the call succeeds with no text.
	EmptySummary = "Continue firmes no propósito!"

	acceptedToken = "positivo"
)

const summaryPrompt = `Aja como um narrador épico da competição de casas "H.I.S Houses".
A %s tem atualmente %d pontos.
As últimas ações registradas foram: %s.
Crie uma frase curta e motivacional (máximo 20 palavras) para inspirar a casa a continuar se esforçando no sistema H.I.S Houses.`

const validatePrompt = `Analise a seguinte justificativa para ganhar pontos no sistema de casas escolar "H.I.S Houses": "%s".
Se a justificativa for algo positivo relacionado a comportamento, notas, limpeza ou colaboração, retorne "positivo".
Se for algo negativo ou ofensivo, retorne "negativo".
Responda apenas com a palavra.`

// Service makes the two advisory calls. Neither ever returns an error.
type Service struct {
	gen     Generator
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// NewService wraps gen. Logger and metrics may be nil.
func NewService(gen Generator, logger *slog.Logger, m *metrics.Metrics) *Service {
	if gen == nil {
		gen = Unconfigured{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		gen:     gen,
		logger:  logger,
		metrics: m,
		tracer:  otel.Tracer("github.com/mmynk/housepoints/internal/advisory"),
	}
}

// Summarize asks for a short motivational line about a house given its total
// and its most recent reasons.
func (s *Service) Summarize(ctx context.Context, houseName string, total int, reasons []string) string {
	ctx, span := s.tracer.Start(ctx, "advisory.Summarize",
		trace.WithAttributes(attribute.String("house", houseName)))
	defer span.End()

	prompt := fmt.Sprintf(summaryPrompt, houseName, total, strings.Join(reasons, ", "))
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.fail(ctx, span, "summarize", err, "house", houseName)
		return FallbackSummary
	}
	s.metrics.AdvisoryCall("summarize", "ok")

	if text = strings.TrimSpace(text); text == "" {
		return EmptySummary
	}
	return text
}

// Validate classifies a reason as acceptable. Any failure of the call counts
// as accepted.
func (s *Service) Validate(ctx context.Context, reason string) bool {
	ctx, span := s.tracer.Start(ctx, "advisory.Validate")
	defer span.End()

	text, err := s.gen.Generate(ctx, fmt.Sprintf(validatePrompt, reason))
	if err != nil {
		s.fail(ctx, span, "validate", err)
		return true
	}

	accepted := strings.ToLower(strings.TrimSpace(text)) == acceptedToken
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}
	s.metrics.AdvisoryCall("validate", outcome)
	span.SetAttributes(attribute.Bool("accepted", accepted))
	return accepted
}

func (s *Service) fail(ctx context.Context, span trace.Span, call string, err error, args ...any) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	if errors.Is(err, context.Canceled) {
		s.metrics.AdvisoryCall(call, "canceled")
		return
	}
	if errors.Is(err, ErrUnconfigured) {
		s.metrics.AdvisoryCall(call, "unconfigured")
		return
	}
	s.metrics.AdvisoryCall(call, "error")
	s.logger.WarnContext(ctx, "advisory call failed", append([]any{"call", call, "error", err}, args...)...)
}
