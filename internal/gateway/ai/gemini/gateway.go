package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"

	"dispatch/internal/entities"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "gemini"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

const suggestPromptTemplate = `You are a ride dispatch assistant. Pick the best driver for the ride.

Ride:
%s

Available drivers:
%s

Pick exactly one driver from the list above. Respond with JSON only:
{"driver_id": "<id from the list>", "reasoning": "<one short sentence>"}`

const parsePromptTemplate = `You are a ride dispatch assistant. Extract a ride request from the operator's free-form text.

Text:
%s

Respond with JSON only:
{
  "customer_name": "string",
  "pickup_address": "string",
  "dropoff_address": "string",
  "priority": "NORMAL" | "HIGH" | "URGENT",
  "notes": "string or null"
}
Use "NORMAL" when urgency is not stated. Put anything that is not a name or an address into notes.`

type Gateway struct {
	model   generator
	retrier retrier
}

func New(model generator) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableAPIError,
	}

	return &Gateway{
		model:   model,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) SuggestDriver(ctx context.Context, rideEntity entities.Ride, candidates []entities.Driver) (*entities.DriverSuggestion, error) {
	ridePayload, err := json.Marshal(toRideView(rideEntity))
	if err != nil {
		return nil, fmt.Errorf("gateway gemini, suggest driver: %w", err)
	}

	candidatesPayload, err := json.Marshal(toCandidateViews(candidates))
	if err != nil {
		return nil, fmt.Errorf("gateway gemini, suggest driver: %w", err)
	}

	prompt := fmt.Sprintf(suggestPromptTemplate, ridePayload, candidatesPayload)

	raw, err := g.generate(ctx, "SuggestDriver", prompt)
	if err != nil {
		return nil, fmt.Errorf("gateway gemini, suggest driver: %w", err)
	}

	var resp suggestionResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("gateway gemini, suggest driver: malformed response: %w", err)
	}

	if resp.DriverID == "" {
		return nil, errors.New("gateway gemini, suggest driver: empty driver id in response")
	}

	return toSuggestionDomain(&resp), nil
}

func (g *Gateway) ParseRide(ctx context.Context, text string) (*entities.RideDraft, error) {
	prompt := fmt.Sprintf(parsePromptTemplate, text)

	raw, err := g.generate(ctx, "ParseRide", prompt)
	if err != nil {
		return nil, fmt.Errorf("gateway gemini, parse ride: %w", err)
	}

	var resp draftResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("gateway gemini, parse ride: malformed response: %w", err)
	}

	return toDraftDomain(&resp), nil
}

func (g *Gateway) generate(ctx context.Context, method string, prompt string) (string, error) {
	var resp *genai.GenerateContentResponse

	err := g.executeWithMetrics(ctx, method, func(ctx context.Context) error {
		var err error
		resp, err = g.model.GenerateContent(ctx, genai.Text(prompt))
		return err
	})
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no response candidates")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}

	return cleanJSONString(text.String()), nil
}

func isRetryableAPIError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}

	switch apiErr.Code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusServiceUnavailable:
		return true
	default:
		return false
	}
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	outcome := getOutcome(err)
	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(serviceName, method, outcome).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		// Метрики Prometheus
		GatewayRetriesTotal.WithLabelValues(serviceName, method, outcome).Inc()
	}

	return err
}

func getOutcome(err error) string {
	if err == nil {
		return "ok"
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("http_%d", apiErr.Code)
	}

	return "error"
}

// cleanJSONString снимает markdown-обертку, если модель все же
// завернула JSON в код-блок.
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
