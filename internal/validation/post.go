// Package validation enforces the post payload contract. The rules are declared
// once and evaluated by two conformant checkers: CheckPayload at the API
// boundary (authoritative, strict JSON shape) and CheckForm in the client
// controller (advisory, pre-submission).
package validation

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Op distinguishes create from update semantics.
type Op int

const (
	OpCreate Op = iota
	OpUpdate
)

// Kind is the JSON type a field must carry.
type Kind int

const (
	KindString Kind = iota
	KindBool
)

// Rule describes the constraints for a single payload field.
type Rule struct {
	Field    string
	Label    string
	Kind     Kind
	Required bool // enforced on create; on update the field may be absent
	MaxLen   int  // characters, 0 means unlimited
}

// PostRules is the single source of truth for both evaluators.
var PostRules = []Rule{
	{Field: "title", Label: "Title", Kind: KindString, Required: true, MaxLen: 200},
	{Field: "content", Label: "Content", Kind: KindString, MaxLen: 5000},
	{Field: "published", Label: "Published", Kind: KindBool},
}

// PostPayload is the accepted, normalized shape of a create/update request.
// Nil means the field was absent from the payload.
type PostPayload struct {
	Title     *string
	Content   *string
	Published *bool
}

// Form holds the raw values of the client-side post dialog.
type Form struct {
	Title     string
	Content   string
	Published bool
}

// CheckPayload validates a raw request body against PostRules. It returns the
// normalized payload, or a field -> message map describing every violation.
// Unknown keys and JSON null values are rejected outright.
func CheckPayload(body []byte, op Op) (*PostPayload, map[string]string) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, map[string]string{"body": "Request body must be a JSON object"}
	}

	violations := map[string]string{}
	known := map[string]Rule{}
	for _, rule := range PostRules {
		known[rule.Field] = rule
	}
	for key := range raw {
		if _, ok := known[key]; !ok {
			violations[key] = fmt.Sprintf("%q is not a recognized field", key)
		}
	}

	payload := &PostPayload{}
	for _, rule := range PostRules {
		value, present := raw[rule.Field]
		if !present {
			if rule.Required && op == OpCreate {
				violations[rule.Field] = rule.Label + " is required"
			}
			continue
		}

		switch rule.Kind {
		case KindString:
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				violations[rule.Field] = rule.Label + " must be a string"
				continue
			}
			if msg := checkString(rule, s); msg != "" {
				violations[rule.Field] = msg
				continue
			}
			normalized := normalizeString(rule, s)
			switch rule.Field {
			case "title":
				payload.Title = &normalized
			case "content":
				payload.Content = &normalized
			}
		case KindBool:
			var b bool
			if err := json.Unmarshal(value, &b); err != nil {
				violations[rule.Field] = rule.Label + " must be a boolean"
				continue
			}
			payload.Published = &b
		}
	}

	if len(violations) > 0 {
		return nil, violations
	}
	return payload, nil
}

// CheckForm runs the same rules over dialog form values without touching the
// network. An empty content field is treated as absent, matching the payload
// the client would submit.
func CheckForm(form Form, op Op) map[string]string {
	violations := map[string]string{}
	for _, rule := range PostRules {
		var value string
		switch rule.Field {
		case "title":
			value = form.Title
		case "content":
			if form.Content == "" {
				continue
			}
			value = form.Content
		default:
			continue
		}
		if value == "" && !(rule.Required && op == OpCreate) {
			continue
		}
		if msg := checkString(rule, value); msg != "" {
			violations[rule.Field] = msg
		}
	}
	if len(violations) > 0 {
		return violations
	}
	return nil
}

// checkString applies the string constraints of a rule to a present value.
func checkString(rule Rule, s string) string {
	if rule.Required && strings.TrimSpace(s) == "" {
		return rule.Label + " is required"
	}
	if rule.MaxLen > 0 && utf8.RuneCountInString(s) > rule.MaxLen {
		return fmt.Sprintf("%s must not exceed %d characters", rule.Label, rule.MaxLen)
	}
	return ""
}

func normalizeString(rule Rule, s string) string {
	if rule.Required {
		return strings.TrimSpace(s)
	}
	return s
}
