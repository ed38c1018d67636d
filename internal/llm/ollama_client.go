package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

type OllamaClient struct {
	ollamaURL string
	client    *http.Client
}

func NewOllamaClient(url string) *OllamaClient {
	return &OllamaClient{
		ollamaURL: url,
		client: &http.Client{
			Timeout: 120 * time.Second, // Set a timeout to avoid hanging requests
		},
	}
}

func (o *OllamaClient) callOllama(prompt string) (string, error) {
	requestBody, _ := json.Marshal(map[string]interface{}{
		"model":  "mistral",
		"prompt": prompt,
	})

	req, err := http.NewRequest("POST", o.ollamaURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {

		}
	}(resp.Body)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	fullBody := string(bodyBytes)

	// If the response is streamed as multiple JSON objects (separated by newlines),
	// aggregate them using our standalone function.
	if strings.Contains(fullBody, "\n") {
		aggregated := AggregateStreamedResponse(fullBody)
		return aggregated, nil
	}

	var result map[string]interface{}
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return "", err
	}
	if responseText, ok := result["response"].(string); ok {
		return responseText, nil
	}

	return "", errors.New("invalid response from Ollama")
}

type LLMResponseChunk struct {
	Model     string `json:"model"`
	CreatedAt string `json:"created_at"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
}

// AggregateStreamedResponse takes the full raw response body (a string with multiple JSON objects separated by newlines)
// and concatenates the "response" fields into one final string.
func AggregateStreamedResponse(body string) string {
	lines := strings.Split(body, "\n")
	var builder strings.Builder
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			var chunk LLMResponseChunk
			if err := json.Unmarshal([]byte(trimmed), &chunk); err != nil {
				log.Println("Error unmarshaling chunk:", err)
				continue
			}
			builder.WriteString(chunk.Response)
		}
	}
	return builder.String()
}

// GeneratedQuestion is one question as produced by the model.
type GeneratedQuestion struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
}

// QuizPayload is the JSON document the model is asked to emit.
type QuizPayload struct {
	Quantitative []GeneratedQuestion `json:"quantitative"`
	Logical      []GeneratedQuestion `json:"logical"`
	Verbal       []GeneratedQuestion `json:"verbal"`
}

// GenerateQuizQuestions asks the model for an aptitude quiz tailored to the
// class level. The model must output minimal JSON with keys 'quantitative',
// 'logical' and 'verbal', each an array of question objects.
func (o *OllamaClient) GenerateQuizQuestions(classLevel string, perSection int) (*QuizPayload, error) {
	prompt := fmt.Sprintf(
		"Generate an aptitude quiz for a %s grade student. "+
			"Produce exactly %d multiple-choice questions for each of three sections: quantitative, logical and verbal. "+
			"Each question has keys 'id', 'question', 'options' (four strings) and 'answerIndex' (0-3). "+
			"Output minimal JSON with keys 'quantitative', 'logical' and 'verbal' and no other text.",
		classLevel, perSection,
	)

	response, err := o.callOllama(prompt)
	if err != nil {
		return nil, err
	}

	var payload QuizPayload
	if err := json.Unmarshal([]byte(response), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse quiz response: %w", err)
	}
	return &payload, nil
}
