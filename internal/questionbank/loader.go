package questionbank

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Question is one row of the interview question workbook.
type Question struct {
	Role            string `json:"role"`
	Difficulty      string `json:"difficulty"`
	Question        string `json:"question"`
	ReferenceAnswer string `json:"reference_answer"`
}

// Load reads the question bank from the first sheet, auto-detecting
// columns by header heuristics so teams can keep their own workbook
// layouts.
func Load(path string) ([]Question, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	roleIdx, diffIdx, questionIdx, answerIdx := -1, -1, -1, -1
	for i, h := range rows[0] {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(l, "role") || strings.Contains(l, "position"):
			if roleIdx == -1 {
				roleIdx = i
			}
		case strings.Contains(l, "difficulty") || strings.Contains(l, "level"):
			if diffIdx == -1 {
				diffIdx = i
			}
		case strings.Contains(l, "reference") || strings.Contains(l, "answer"):
			if answerIdx == -1 {
				answerIdx = i
			}
		case strings.Contains(l, "question"):
			if questionIdx == -1 {
				questionIdx = i
			}
		}
	}
	if questionIdx == -1 {
		return nil, fmt.Errorf("no question column detected in header %v", rows[0])
	}

	cell := func(r []string, idx int) string {
		if idx >= 0 && idx < len(r) {
			return strings.TrimSpace(r[idx])
		}
		return ""
	}

	var out []Question
	for i, r := range rows {
		if i == 0 {
			continue
		}
		q := Question{
			Role:            cell(r, roleIdx),
			Difficulty:      cell(r, diffIdx),
			Question:        cell(r, questionIdx),
			ReferenceAnswer: cell(r, answerIdx),
		}
		// skip blank rows quietly
		if q.Question == "" {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

// Bank indexes questions for lookup by role and difficulty.
type Bank struct {
	questions []Question
}

func NewBank(questions []Question) *Bank {
	return &Bank{questions: questions}
}

// Find returns the questions matching a role and difficulty,
// case-insensitively. Empty filters match everything.
func (b *Bank) Find(role, difficulty string) []Question {
	role = strings.ToLower(strings.TrimSpace(role))
	difficulty = strings.ToLower(strings.TrimSpace(difficulty))
	var out []Question
	for _, q := range b.questions {
		if role != "" && !strings.Contains(strings.ToLower(q.Role), role) {
			continue
		}
		if difficulty != "" && strings.ToLower(q.Difficulty) != difficulty {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Reference returns the reference answer for a question text, if the
// bank has one.
func (b *Bank) Reference(question string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(question))
	for _, q := range b.questions {
		if strings.ToLower(strings.TrimSpace(q.Question)) == needle {
			return q.ReferenceAnswer, q.ReferenceAnswer != ""
		}
	}
	return "", false
}

// Len reports how many questions are loaded.
func (b *Bank) Len() int { return len(b.questions) }
