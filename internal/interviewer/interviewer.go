package interviewer

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"google.golang.org/genai"
)

const modelName = "gemini-2.5-flash"

// Conductor generates technical interview questions and narrative
// answer feedback through the Gemini API.
type Conductor struct {
	client *genai.Client
}

func NewConductor(ctx context.Context) (*Conductor, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Conductor{client: client}, nil
}

// GenerateQuestions asks for exactly five distinct technical questions
// for a role, tech stack, and difficulty level.
func (c *Conductor) GenerateQuestions(ctx context.Context, jobRole, techStack, difficulty string) ([]string, error) {
	if difficulty == "" {
		difficulty = "Medium"
	}

	prompt := fmt.Sprintf(`You are a Professional Technical Recruiter conducting a technical interview.

Generate EXACTLY 5 distinct, high-quality technical interview questions for this profile:
- Job Role: %s
- Tech Stack: %s
- Difficulty Level: %s

Requirements:
1. Questions must be conceptual and scenario-based, not syntax trivia.
2. Questions must be relevant to the specific tech stack, progressive in
   difficulty, and distinct from each other.
3. Output format: a numbered list, one question per line, nothing else.
   No preamble, no commentary.`, jobRole, techStack, difficulty)

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.7)),
		TopP:        genai.Ptr(float32(0.8)),
	}
	resp, err := c.client.Models.GenerateContent(ctx, modelName,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}, config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	questions := ParseQuestionList(resp.Text())
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions in model response")
	}
	return questions, nil
}

// AnswerFeedback produces short narrative feedback on a candidate's
// answer to one question.
func (c *Conductor) AnswerFeedback(ctx context.Context, question, answer string) (string, error) {
	prompt := fmt.Sprintf(`You are a technical interviewer reviewing a candidate's answer.

Question: %s

Candidate's answer: %s

Give constructive feedback in at most 120 words: what was correct, what
was missing, and one concrete suggestion. Plain text only.`, question, answer)

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(0.7)),
		MaxOutputTokens: 300,
	}
	resp, err := c.client.Models.GenerateContent(ctx, modelName,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate feedback: %w", err)
	}

	text := strings.ReplaceAll(resp.Text(), "*", "")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty feedback from model")
	}
	return strings.TrimSpace(text), nil
}

var listItem = regexp.MustCompile(`^\s*(?:\d+[\.\)]|[-*])\s*(.+)$`)

// ParseQuestionList extracts questions from a numbered or bulleted
// list, falling back to question-mark lines when the model ignored the
// format, and caps the result at five.
func ParseQuestionList(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if m := listItem.FindStringSubmatch(line); m != nil {
			q := strings.TrimSpace(m[1])
			if q != "" {
				out = append(out, q)
			}
		}
	}
	if len(out) == 0 {
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if strings.HasSuffix(line, "?") {
				out = append(out, line)
			}
		}
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}
