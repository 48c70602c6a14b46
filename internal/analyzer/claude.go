// Package analyzer calls the Anthropic messages API to turn extracted CV
// text into a structured assessment for one role.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"regexp"
	"time"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"github.com/ryssellou/recruitment-dashboard/internal/model"
)

const (
	messagesEndpoint = "https://api.anthropic.com/v1/messages"
	apiVersion       = "2023-06-01"
	defaultModel     = "claude-sonnet-4-20250514"
	maxTokens        = 1500
	// CVs longer than this are truncated before prompting.
	maxCVChars = 15000
)

// Message represents a chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesRequest represents the request structure for the messages API
type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

// messagesResponse represents the response from the messages API
type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Client calls the analysis API over plain HTTP.
type Client struct {
	apiKey string
	model  string
	http   *http.Client
}

// NewClient builds a Client from ANTHROPIC_API_KEY / ANTHROPIC_MODEL.
func NewClient() (*Client, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is not configured")
	}

	mdl := os.Getenv("ANTHROPIC_MODEL")
	if mdl == "" {
		mdl = defaultModel
	}

	return &Client{
		apiKey: apiKey,
		model:  mdl,
		http:   &http.Client{Timeout: 120 * time.Second},
	}, nil
}

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// AnalyzeCV sends the CV text and target role to the model and parses the
// structured JSON it returns.
func (cl *Client) AnalyzeCV(ctx context.Context, cvText, role string) (*model.CVAnalysis, error) {
	if role == "" {
		role = "general"
	}
	if len(cvText) > maxCVChars {
		cvText = cvText[:maxCVChars]
	}

	prompt := fmt.Sprintf(`You are a recruitment assistant. Analyze the following CV/resume for a %s position.

Extract and summarize:
1. **Key Skills**: List the most relevant technical and soft skills
2. **Experience Summary**: Brief overview of work history and years of experience
3. **Education**: Degrees, certifications, relevant training
4. **Strengths**: 3-5 notable strengths for this role
5. **Areas of Concern**: Any gaps or potential concerns (be constructive)
6. **Overall Fit**: Brief assessment of fit for the %s position (1-2 sentences)

CV Content:
---
%s
---

Respond ONLY with a valid JSON object in this exact format:
{
  "skills": ["skill1", "skill2", ...],
  "experienceSummary": "...",
  "yearsOfExperience": number or null,
  "education": ["degree1", "cert1", ...],
  "strengths": ["strength1", "strength2", ...],
  "concerns": ["concern1", ...],
  "overallFit": "..."
}`, role, role, cvText)

	requestBody := messagesRequest{
		Model:     cl.model,
		MaxTokens: maxTokens,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, messagesEndpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", cl.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := cl.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call analysis API: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Printf("warning: failed to close response body: %v", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("analysis API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(parsed.Content) == 0 {
		return nil, fmt.Errorf("no content in analysis response")
	}

	return ParseAnalysis(parsed.Content[0].Text, cl.model)
}

// ParseAnalysis extracts the JSON object from the model's completion text
// and unmarshals it into the analysis payload.
func ParseAnalysis(content, modelName string) (*model.CVAnalysis, error) {
	raw := jsonObjectRe.FindString(content)
	if raw == "" {
		return nil, fmt.Errorf("analysis response contains no JSON object")
	}

	var analysis model.CVAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}

	analysis.AnalyzedAt = time.Now().UTC().Format(time.RFC3339)
	analysis.Model = modelName
	return &analysis, nil
}
