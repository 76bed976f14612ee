package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/skillswap/skillswap-backend/internal/domain"
	"google.golang.org/api/option"
)

// Client scores skill-name pairs with Gemini. All pairs of one match request
// go out in a single prompt instead of one round-trip per pair.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(apiKey, modelName string) (*Client, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.1)

	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) Close() {
	c.client.Close()
}

// ScorePairs rates every pair in one request. Any failure is returned as-is;
// callers decide how to surface it, and a partial or invented ranking is
// never produced here.
func (c *Client) ScorePairs(ctx context.Context, pairs []domain.SkillPair) ([]domain.SimilarityScore, error) {
	if len(pairs) == 0 {
		return []domain.SimilarityScore{}, nil
	}

	var sb strings.Builder
	sb.WriteString(`You rate how related pairs of teachable skills are, for a skill-exchange platform.
For each pair below, output a similarity score between 0.0 and 1.0 and a short interpretation
(a few words, e.g. "Very similar", "Same ecosystem", "Unrelated").

Pairs:
`)
	for i, p := range pairs {
		fmt.Fprintf(&sb, "%d. %q vs %q\n", i+1, p.NameA, p.NameB)
	}
	sb.WriteString(`
Output: a JSON array, one object per pair in the same order, shaped like
[{"score": 0.85, "interpretation": "Very similar"}]. Output only the JSON array.`)

	resp, err := c.model.GenerateContent(ctx, genai.Text(sb.String()))
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no content")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}

	responseText := strings.TrimSpace(out.String())
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")

	var scores []domain.SimilarityScore
	if err := json.Unmarshal([]byte(strings.TrimSpace(responseText)), &scores); err != nil {
		return nil, fmt.Errorf("failed to parse similarity response: %w", err)
	}
	if len(scores) != len(pairs) {
		return nil, fmt.Errorf("gemini returned %d scores for %d pairs", len(scores), len(pairs))
	}

	for i := range scores {
		if scores[i].Score < 0 {
			scores[i].Score = 0
		}
		if scores[i].Score > 1 {
			scores[i].Score = 1
		}
	}
	return scores, nil
}
