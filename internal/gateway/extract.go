package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	jsonFence = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	anyFence  = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// ExtractJSON returns the JSON text inside a ```json fence, or a bare ```
// fence, or the content itself when it is not fenced.
func ExtractJSON(content string) string {
	for _, re := range []*regexp.Regexp{jsonFence, anyFence} {
		if m := re.FindStringSubmatch(content); m != nil && m[1] != "" {
			return m[1]
		}
	}
	return strings.TrimSpace(content)
}

// ParseObject extracts the JSON object from model output.
func ParseObject(content string) (json.RawMessage, error) {
	text := ExtractJSON(content)

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: result is not an object", ErrMalformedResponse)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(text)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return json.RawMessage(buf.Bytes()), nil
}

func DecodeAnalysis(raw json.RawMessage) (*FashionAnalysis, error) {
	var analysis FashionAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &analysis, nil
}
