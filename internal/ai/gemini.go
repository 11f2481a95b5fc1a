package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel   = "gemini-2.5-flash-lite"
)

// rerollPrefixes mark hints that look like earlier AI output. A hint starting
// with one of these means the user wants a fresh idea, not a refinement.
var rerollPrefixes = []string{"Vision:", "Strategic Objective:", "Roadmap:", "Milestone:"}

// concreteGoals seed the suggestion prompt when the user gave no hint.
var concreteGoals = []string{
	"Run a Marathon", "Learn French", "Save $10,000", "Write a Novel",
	"Learn Python", "Visit Japan", "Get Promoted", "Deadlift 100kg",
	"Learn Guitar", "Quit Sugar", "Read 24 Books", "Start a Business",
	"Renovate the House", "Learn to Surf", "Cook Every Day", "Meditate Daily",
}

// GeminiConfig configures the Gemini text-generation adapter.
type GeminiConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
	// PickGoal selects a concrete goal when no hint is given. Defaults to a
	// random pick; tests inject a deterministic chooser.
	PickGoal func([]string) string
}

// Gemini calls the Google Generative Language API over HTTP.
type Gemini struct {
	cfg GeminiConfig
}

var _ Collaborator = (*Gemini)(nil)

// NewGemini builds a Gemini collaborator. The API key is required; base URL
// and model fall back to production defaults.
func NewGemini(cfg GeminiConfig) (*Gemini, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultGeminiBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = defaultGeminiModel
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.PickGoal == nil {
		cfg.PickGoal = func(goals []string) string {
			return goals[rand.Intn(len(goals))]
		}
	}
	return &Gemini{cfg: cfg}, nil
}

// SuggestGoal generates a punchy vision title for a goal.
func (g *Gemini) SuggestGoal(ctx context.Context, hint string) (string, error) {
	hint = strings.TrimSpace(hint)
	for _, prefix := range rerollPrefixes {
		if strings.HasPrefix(hint, prefix) {
			hint = ""
			break
		}
	}

	var prompt string
	if hint == "" {
		selected := g.cfg.PickGoal(concreteGoals)
		prompt = fmt.Sprintf(
			"Formulate a concise, punchy, and professional Vision Title for this goal: '%s'. \n"+
				"The title should be inspiring but direct. Avoid excessive corporate buzzwords. \n"+
				"Format: 'Vision: [Short, Powerful Phrase]' or 'Strategic Objective: [Clear Outcome]'. \n"+
				"Keep it under 10 words. \n"+
				"Examples: 'Vision: Financial Independence', 'Vision: Fluent in French', 'Strategy: Marathon Ready'. \n"+
				"Provide ONLY the title.",
			selected,
		)
	} else {
		prompt = fmt.Sprintf(
			"Rephrase this goal into a short, punchy, and professional Vision Title. "+
				"Avoid lengthy sentences. Focus on the core value. "+
				"Format: 'Vision: ...' "+
				"Goal: '%s'. Provide ONLY the title, no quotes.",
			hint,
		)
	}

	text, err := g.generateContent(ctx, prompt, 1.0, 50)
	if err != nil {
		return "", fmt.Errorf("suggest goal: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// BreakdownQuest asks for five actionable sub-quests and parses the
// "[Title] | [Duration] | [Category]" line format.
func (g *Gemini) BreakdownQuest(ctx context.Context, title string) ([]Suggestion, error) {
	prompt := fmt.Sprintf(
		"Break down this Main Quest into 5 actionable sub-goals (quests): '%s'. \n"+
			"Format each line exactly as: [Title] | [Estimated Duration] | [Category] \n"+
			"Example: \n"+
			"Research Running Shoes | 1 week | Preparation \n"+
			"Run 5km without stopping | 1 month | Training \n"+
			"Join a local running club | 2 weeks | Social \n"+
			"Avoid introductory text. Provide ONLY the list.",
		title,
	)

	text, err := g.generateContent(ctx, prompt, 0.7, 300)
	if err != nil {
		return nil, fmt.Errorf("breakdown quest: %w", err)
	}
	return ParseBreakdown(text), nil
}

// MotivationalQuote generates a short quote tailored to the goal.
func (g *Gemini) MotivationalQuote(ctx context.Context, title string) (string, error) {
	prompt := fmt.Sprintf(
		"Generate a single, short, profound motivational quote specifically for someone whose goal is: '%s'. \n"+
			"Do not be cheesy. Be stoic, inspiring, or visionary. \n"+
			"Maximum 15 words. \n"+
			"Format: Just the quote text.",
		title,
	)

	text, err := g.generateContent(ctx, prompt, 1.0, 30)
	if err != nil {
		return "", fmt.Errorf("motivational quote: %w", err)
	}
	return strings.ReplaceAll(strings.TrimSpace(text), `"`, ""), nil
}

// VisionImageURL synthesizes the image URL without calling the provider.
func (g *Gemini) VisionImageURL(title string) string {
	return VisionImageURL(title)
}

// ParseBreakdown extracts sub-quest suggestions from the pipe-separated
// line format. Lines with fewer than three fields are skipped.
func ParseBreakdown(raw string) []Suggestion {
	var suggestions []Suggestion
	for _, line := range strings.Split(raw, "\n") {
		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Title:    strings.TrimSpace(parts[0]),
			Duration: strings.TrimSpace(parts[1]),
			Category: strings.TrimSpace(parts[2]),
		})
	}
	return suggestions
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) generateContent(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     temperature,
			MaxOutputTokens: maxTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.cfg.BaseURL, g.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.cfg.APIKey)

	resp, err := g.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call gemini: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var text strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}
