//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=gemini_test
package gemini

import (
	"context"

	"github.com/google/generative-ai-go/genai"
)

type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
