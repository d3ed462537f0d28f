// Package validation schema-checks raw JSON payloads before anything touches
// the store or the authenticator. A schema cleans a decoded field map down to
// the recognized, present, non-null string fields, or fails with an Error
// that enumerates every offending field at once.
package validation

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Error reports all field-level problems of a single payload.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + e.Fields[name]
	}
	return strings.Join(parts, "; ")
}

// Check inspects a present string value and returns a reason when it is
// unacceptable, or "" when it passes.
type Check func(value string) string

type Field struct {
	Name     string
	Required bool
	Check    Check
}

// Rule is a cross-field constraint evaluated over the cleaned map. It returns
// the offending field name and a reason, or "" when satisfied.
type Rule func(cleaned map[string]string) (field, reason string)

type Schema struct {
	Fields []Field
	Rules  []Rule
}

// Clean validates raw against the schema. Unknown fields are dropped
// silently; JSON null counts as absent, so a required field set to null is
// still reported missing.
func (s Schema) Clean(raw map[string]any) (map[string]string, *Error) {
	cleaned := make(map[string]string)
	bad := make(map[string]string)

	for _, f := range s.Fields {
		value, present := raw[f.Name]
		if !present || value == nil {
			if f.Required {
				bad[f.Name] = "required field missing"
			}
			continue
		}
		str, ok := value.(string)
		if !ok {
			bad[f.Name] = "must be a string"
			continue
		}
		if f.Check != nil {
			if reason := f.Check(str); reason != "" {
				bad[f.Name] = reason
				continue
			}
		}
		cleaned[f.Name] = str
	}

	for _, rule := range s.Rules {
		if field, reason := rule(cleaned); reason != "" {
			bad[field] = reason
		}
	}

	if len(bad) > 0 {
		return nil, &Error{Fields: bad}
	}
	return cleaned, nil
}

// Decode reads a JSON object body into the raw field map a schema consumes.
func Decode(r io.Reader) (map[string]any, *Error) {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, &Error{Fields: map[string]string{"body": "must be a JSON object"}}
	}
	return raw, nil
}

func nonEmpty(value string) string {
	if value == "" {
		return "must not be empty"
	}
	return ""
}

func maxLen(limit int) Check {
	return func(value string) string {
		if len(value) > limit {
			return fmt.Sprintf("must be at most %d characters", limit)
		}
		return ""
	}
}

func minLen(limit int) Check {
	return func(value string) string {
		if len(value) < limit {
			return fmt.Sprintf("must be at least %d characters", limit)
		}
		return ""
	}
}

func emailLike(value string) string {
	if !strings.Contains(value, "@") || !strings.Contains(value, ".") {
		return "must contain '@' and '.'"
	}
	return ""
}

func chain(checks ...Check) Check {
	return func(value string) string {
		for _, check := range checks {
			if reason := check(value); reason != "" {
				return reason
			}
		}
		return ""
	}
}

// credentialPair requires owner_login and password to travel together: ad
// mutations authenticate with both or with neither (bearer-token requests).
func credentialPair(cleaned map[string]string) (string, string) {
	_, hasLogin := cleaned["owner_login"]
	_, hasPassword := cleaned["password"]
	if hasLogin != hasPassword {
		return "owner_login", "owner_login and password must be supplied together"
	}
	return "", ""
}

const (
	maxTitleLen       = 200
	maxDescriptionLen = 5000
	minPasswordLen    = 8
)

var (
	// CreateAd covers POST /ads/ with body credentials.
	CreateAd = Schema{
		Fields: []Field{
			{Name: "title", Required: true, Check: chain(nonEmpty, maxLen(maxTitleLen))},
			{Name: "description", Check: maxLen(maxDescriptionLen)},
			{Name: "owner_login", Required: true, Check: nonEmpty},
			{Name: "password", Required: true, Check: nonEmpty},
		},
	}

	// CreateAdAuthed is CreateAd for requests whose identity was already
	// resolved from a bearer token, so body credentials are optional.
	CreateAdAuthed = Schema{
		Fields: []Field{
			{Name: "title", Required: true, Check: chain(nonEmpty, maxLen(maxTitleLen))},
			{Name: "description", Check: maxLen(maxDescriptionLen)},
			{Name: "owner_login", Check: nonEmpty},
			{Name: "password", Check: nonEmpty},
		},
		Rules: []Rule{credentialPair},
	}

	// PatchAd covers PATCH and DELETE on /ads/{id}; credentials travel in the
	// body even for delete.
	PatchAd = Schema{
		Fields: []Field{
			{Name: "title", Check: chain(nonEmpty, maxLen(maxTitleLen))},
			{Name: "description", Check: maxLen(maxDescriptionLen)},
			{Name: "owner_login", Check: nonEmpty},
			{Name: "password", Check: nonEmpty},
		},
		Rules: []Rule{credentialPair},
	}

	CreateUser = Schema{
		Fields: []Field{
			{Name: "login", Required: true, Check: chain(nonEmpty, emailLike)},
			{Name: "password", Required: true, Check: minLen(minPasswordLen)},
		},
	}

	PatchUser = Schema{
		Fields: []Field{
			{Name: "login", Check: chain(nonEmpty, emailLike)},
			{Name: "password", Check: minLen(minPasswordLen)},
		},
	}
)
