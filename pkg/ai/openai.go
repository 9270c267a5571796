package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	aiDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "beat",
		Subsystem: "ai",
		Name:      "question_duration_seconds",
		Help:      "Duration of AI question generation requests",
	}, []string{"model"})

	aiFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "beat",
		Subsystem: "ai",
		Name:      "question_failures_total",
		Help:      "Number of AI question generation failures",
	}, []string{"model"})
)

// OpenAIConfig defines configuration options for the OpenAI question generator.
type OpenAIConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
	Logger      zerolog.Logger
}

// OpenAIGenerator implements QuestionGenerator against the OpenAI chat
// completion API.
type OpenAIGenerator struct {
	client *openai.Client
	cfg    OpenAIConfig
	tracer trace.Tracer
	logger zerolog.Logger
}

// NewOpenAIGenerator builds a generator using the provided configuration.
func NewOpenAIGenerator(cfg OpenAIConfig) (*OpenAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}

	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 128
	}

	if cfg.Temperature == 0 {
		cfg.Temperature = 0.8
	}

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(openai.DefaultConfig(cfg.APIKey)),
		cfg:    cfg,
		tracer: otel.Tracer("github.com/thebeat-edu/beat-go-api/pkg/ai/openai"),
		logger: cfg.Logger.With().Str("component", "ai_question_generator").Logger(),
	}, nil
}

// GenerateQuestion asks the model for a single Socratic question.
func (g *OpenAIGenerator) GenerateQuestion(parent context.Context, input QuestionInput) (string, error) {
	ctx, span := g.tracer.Start(parent, "openai.generate_question", trace.WithAttributes(
		attribute.String("model", g.cfg.Model),
		attribute.String("category", input.Category),
	))
	defer span.End()

	start := time.Now()
	request := openai.ChatCompletionRequest{
		Model:       g.cfg.Model,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: socraticSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: buildQuestionPrompt(input)},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, request)
	aiDuration.WithLabelValues(g.cfg.Model).Observe(time.Since(start).Seconds())
	if err != nil {
		aiFailures.WithLabelValues(g.cfg.Model).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", fmt.Errorf("openai generate question: %w", err)
	}

	if len(resp.Choices) == 0 {
		err := fmt.Errorf("no choices returned from openai")
		aiFailures.WithLabelValues(g.cfg.Model).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	question := strings.TrimSpace(resp.Choices[0].Message.Content)
	if question == "" {
		err := fmt.Errorf("empty question returned from openai")
		aiFailures.WithLabelValues(g.cfg.Model).Inc()
		span.RecordError(err)
		return "", err
	}

	return question, nil
}

func socraticSystemPrompt() string {
	return "You are a Socratic writing tutor for high-school research essays. You only ever ask one short, " +
		"thought-provoking question at a time. You never give answers, write prose for the student, or " +
		"suggest wording. Respond with the question text only."
}

func buildQuestionPrompt(input QuestionInput) string {
	builder := strings.Builder{}
	builder.WriteString("Topic: ")
	builder.WriteString(input.Topic)
	builder.WriteString("\nCategory: ")
	builder.WriteString(input.Category)
	fmt.Fprintf(&builder, "\nEssay word count: %d\n", input.WordCount)
	if len(input.Highlights) > 0 {
		builder.WriteString("\nHighlights the student saved:\n")
		for _, h := range input.Highlights {
			builder.WriteString("- ")
			builder.WriteString(h)
			builder.WriteString("\n")
		}
	}
	if input.EssayExcerpt != "" {
		builder.WriteString("\nCurrent essay excerpt:\n")
		builder.WriteString(input.EssayExcerpt)
		builder.WriteString("\n")
	}
	builder.WriteString("\nAsk one question that pushes the student's thinking further.")
	return builder.String()
}
