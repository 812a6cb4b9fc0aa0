package reminder

import (
	"encoding/json"
	"fmt"
	"strings"

	"bloodconnect/pkg/types"
)

const (
	FieldEmailContent = "emailContent"
	FieldSMSContent   = "smsContent"
)

// ResponseSchema is the JSON schema providers are asked to honour.
func ResponseSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			FieldEmailContent: map[string]any{
				"type":        "string",
				"description": "The content of the personalized email reminder.",
			},
			FieldSMSContent: map[string]any{
				"type":        "string",
				"description": "The content of the personalized SMS reminder.",
			},
		},
		"required":             []string{FieldEmailContent, FieldSMSContent},
		"additionalProperties": false,
	}
}

// ParseResult checks a provider answer against the two-field schema. Both
// fields must be present, JSON strings, and not blank.
func ParseResult(raw string) (*types.ReminderResult, error) {
	payload := stripCodeFence(raw)
	if payload == "" {
		return nil, fmt.Errorf("%w: empty response", types.ErrMalformedResponse)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return nil, fmt.Errorf("%w: response is not a JSON object: %w", types.ErrMalformedResponse, err)
	}

	email, err := requiredString(fields, FieldEmailContent)
	if err != nil {
		return nil, err
	}

	sms, err := requiredString(fields, FieldSMSContent)
	if err != nil {
		return nil, err
	}

	return &types.ReminderResult{
		EmailContent: email,
		SMSContent:   sms,
	}, nil
}

func requiredString(fields map[string]json.RawMessage, name string) (string, error) {
	raw, ok := fields[name]
	if !ok {
		return "", fmt.Errorf("%w: missing %s", types.ErrMalformedResponse, name)
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("%w: %s is not a string", types.ErrMalformedResponse, name)
	}

	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%w: %s is empty", types.ErrMalformedResponse, name)
	}

	return value, nil
}

// stripCodeFence removes a surrounding ```json ... ``` block some models
// add even in JSON mode.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}
