package summary

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const systemPrompt = `You are a news editor. Summarize the article text you are given for a chat audience.

Rules:
1. Two or three sentences, neutral tone
2. Keep all facts: numbers, names, dates, percentages
3. Do not add opinions or information that is not in the text
4. Write in the language of the article

Output as JSON only, no other text:
{
  "summary": "the summary"
}`

var errEmptySummary = errors.New("empty summary")

// parseSummary extracts the summary field from a model reply.
func parseSummary(content string) (string, error) {
	content = cleanJSONResponse(content)

	var parsed struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}

	parsed.Summary = strings.TrimSpace(parsed.Summary)
	if parsed.Summary == "" {
		return "", errEmptySummary
	}
	return parsed.Summary, nil
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
