package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// RemoteEmbedder calls an Ollama-compatible embeddings endpoint. It
// satisfies the engine's Embedder interface; callers that want to degrade
// gracefully handle the error and fall back to a local embedder.
type RemoteEmbedder struct {
	url    string
	model  string
	client *http.Client
}

func NewRemoteEmbedder(url string, timeoutSeconds int) *RemoteEmbedder {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 10
	}
	return &RemoteEmbedder{
		url:   url,
		model: "nomic-embed-text",
		client: &http.Client{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
	}
}

func (r *RemoteEmbedder) Embed(text string) ([]float64, error) {
	requestBody, _ := json.Marshal(map[string]interface{}{
		"model":  r.model,
		"prompt": text,
	})

	req, err := http.NewRequest("POST", r.url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {

		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("embedding service returned " + resp.Status)
	}

	var result struct {
		Embedding []float64 `json:"embedding"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if len(result.Embedding) == 0 {
		return nil, errors.New("embedding service returned an empty vector")
	}
	return result.Embedding, nil
}
