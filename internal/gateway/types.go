package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type ChatRequest struct {
	Model      string    `json:"model"`
	Messages   []Message `json:"messages"`
	Modalities []string  `json:"modalities,omitempty"`
}

// Message content is either a plain string or a []ContentPart.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

type ImageURL struct {
	URL string `json:"url"`
}

type ChatResponse struct {
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Message ResponseMessage `json:"message"`
}

type ResponseMessage struct {
	Role    string            `json:"role"`
	Content string            `json:"content"`
	Images  []ImageAttachment `json:"images,omitempty"`
}

type ImageAttachment struct {
	Type     string   `json:"type"`
	ImageURL ImageURL `json:"image_url"`
}

// DesignResult is what the image model produced for a customization prompt.
type DesignResult struct {
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description,omitempty"`
}

// FashionAnalysis is the structured form of an analysis result.
type FashionAnalysis struct {
	ItemName       string         `json:"item_name"`
	Category       string         `json:"category"`
	Description    string         `json:"description"`
	Color          string         `json:"color"`
	Style          string         `json:"style"`
	Confidence     LooseNumber    `json:"confidence"`
	ProductMatches []ProductMatch `json:"product_matches"`
}

type ProductMatch struct {
	Name       string      `json:"name"`
	Brand      string      `json:"brand"`
	Price      LooseText   `json:"price"`
	URL        string      `json:"url"`
	Similarity LooseNumber `json:"similarity"`
}

// LooseText accepts either a JSON string or a number. The model is asked
// for "$XX" prices but sometimes answers with a bare number.
type LooseText string

func (t *LooseText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = LooseText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if f, err := n.Float64(); err == nil {
		*t = LooseText(strconv.FormatFloat(f, 'f', -1, 64))
		return nil
	}
	*t = LooseText(n.String())
	return nil
}

// LooseNumber accepts a JSON number or a string holding one, e.g. "0.95".
// It is written back as a plain number.
type LooseNumber float64

func (n *LooseNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%q is not a number", s)
		}
		*n = LooseNumber(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = LooseNumber(f)
	return nil
}
