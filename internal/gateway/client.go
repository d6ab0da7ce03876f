package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	analysisSystemPrompt = `You are a fashion expert AI. Analyze clothing items in images and provide detailed information.
Return your response as a JSON object with this exact structure:
{
  "item_name": "short descriptive name",
  "category": "dress|shirt|pants|shoes|jacket|accessory",
  "description": "detailed description of the item",
  "color": "primary color",
  "style": "casual|formal|sporty|elegant|streetwear",
  "confidence": 0.95,
  "product_matches": [
    {
      "name": "Similar item name",
      "brand": "Brand name",
      "price": "$XX",
      "url": "https://example.com/product",
      "similarity": 0.9
    }
  ]
}`
	analysisUserPrompt = "Analyze this fashion item and identify what it is. Provide product match suggestions from popular online stores like Zara, H&M, ASOS, Nordstrom."

	designSystemPrompt = "You are a fashion design AI. Generate realistic fashion item images based on user descriptions and modifications."

	defaultDesignDescription = "Custom design generated"
)

type Options struct {
	BaseURL       string
	APIKey        string
	AnalysisModel string
	ImageModel    string
	Timeout       time.Duration
	HTTPClient    *http.Client
	Logger        logrus.FieldLogger
}

// Client talks to the OpenAI compatible chat completions endpoint of the
// AI gateway. The API key never leaves this type.
type Client struct {
	baseURL       string
	apiKey        string
	analysisModel string
	imageModel    string
	httpClient    *http.Client
	logger        logrus.FieldLogger
}

func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 120 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Client{
		baseURL:       strings.TrimSuffix(opts.BaseURL, "/"),
		apiKey:        opts.APIKey,
		analysisModel: opts.AnalysisModel,
		imageModel:    opts.ImageModel,
		httpClient:    httpClient,
		logger:        logger.WithField("component", "gateway"),
	}
}

// Analyze asks the analysis model to identify the garment at imageURL and
// returns the JSON object it answered with, unfenced and compacted.
func (c *Client) Analyze(ctx context.Context, imageURL string) (json.RawMessage, error) {
	req := ChatRequest{
		Model: c.analysisModel,
		Messages: []Message{
			{Role: "system", Content: analysisSystemPrompt},
			{Role: "user", Content: []ContentPart{
				{Type: "text", Text: analysisUserPrompt},
				{Type: "image_url", ImageURL: &ImageURL{URL: imageURL}},
			}},
		},
	}

	c.logger.WithField("image_url", imageURL).Info("analyzing fashion image")

	resp, err := c.complete(ctx, req)
	if err != nil {
		return nil, err
	}

	content := firstContent(resp)
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyResponse
	}

	raw, err := ParseObject(content)
	if err != nil {
		c.logger.WithError(err).WithField("content", content).Error("failed to parse analysis result")
		return nil, err
	}
	return raw, nil
}

// GenerateDesign asks the image model for a design. When originalImageURL is
// set the image is attached and the prompt describes modifications to it.
func (c *Client) GenerateDesign(ctx context.Context, prompt, originalImageURL string) (*DesignResult, error) {
	var userContent any
	if originalImageURL != "" {
		userContent = []ContentPart{
			{Type: "text", Text: "Create a fashion design based on this image with the following modifications: " + prompt},
			{Type: "image_url", ImageURL: &ImageURL{URL: originalImageURL}},
		}
	} else {
		userContent = "Create a fashion design: " + prompt
	}

	req := ChatRequest{
		Model: c.imageModel,
		Messages: []Message{
			{Role: "system", Content: designSystemPrompt},
			{Role: "user", Content: userContent},
		},
		Modalities: []string{"image", "text"},
	}

	c.logger.WithField("prompt", prompt).Info("generating custom design")

	resp, err := c.complete(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 || len(resp.Choices[0].Message.Images) == 0 ||
		resp.Choices[0].Message.Images[0].ImageURL.URL == "" {
		return nil, ErrNoImage
	}

	msg := resp.Choices[0].Message
	description := msg.Content
	if strings.TrimSpace(description) == "" {
		description = defaultDesignDescription
	}

	return &DesignResult{
		ImageURL:    msg.Images[0].ImageURL.URL,
		Description: description,
	}, nil
}

func (c *Client) complete(ctx context.Context, chatReq ChatRequest) (*ChatResponse, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	jsonData, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return nil, ErrCreditsDepleted
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("AI gateway error")
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result ChatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

func firstContent(resp *ChatResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}
	return resp.Choices[0].Message.Content
}
