// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec converts note bodies to and from the opaque string stored in
// the content column of a note.
//
// Text notes are stored as {"text": ..., "source": ...} and resource lists as
// {"title": ..., "items": [...], "source": ...}. Decoding never fails: content
// that is not a JSON object is returned as plain text so notes written by
// older clients still render.
package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/coffee-notes/models"
)

// Encode serializes body for a note of the given category.
func Encode(category models.Category, body models.Body) (string, error) {
	if !category.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	var payload any
	switch b := body.(type) {
	case models.ListBody:
		if !category.IsList() {
			return "", fmt.Errorf("%w: %s expects a text body", ErrBodyMismatch, category)
		}
		payload = b
	case models.TextBody:
		if category.IsList() {
			return "", fmt.Errorf("%w: %s expects a list body", ErrBodyMismatch, category)
		}
		payload = b
	default:
		return "", fmt.Errorf("%w: %T", ErrBodyMismatch, body)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingBody, err)
	}

	return string(raw), nil
}

// Decode parses a stored content blob. It never fails.
//
// Objects carrying "title" or "items" decode as [models.ListBody], objects
// carrying "text" as [models.TextBody]. Any other object keeps its raw form
// as the text and only contributes its "source". Anything that is not a JSON
// object decodes as TextBody{Text: blob}.
func Decode(blob string) models.Body {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &fields); err != nil || fields == nil {
		return models.TextBody{Text: blob}
	}

	_, hasTitle := fields["title"]
	_, hasItems := fields["items"]
	if hasTitle || hasItems {
		var list models.ListBody
		if err := json.Unmarshal([]byte(blob), &list); err != nil {
			return models.TextBody{Text: blob}
		}
		return list
	}

	if _, hasText := fields["text"]; hasText {
		var text models.TextBody
		if err := json.Unmarshal([]byte(blob), &text); err != nil {
			return models.TextBody{Text: blob}
		}
		return text
	}

	var source string
	if raw, ok := fields["source"]; ok {
		_ = json.Unmarshal(raw, &source)
	}

	return models.TextBody{Text: blob, Source: source}
}

// Searchable returns the text that free-text search runs against:
// text, title, items and source joined by spaces.
func Searchable(body models.Body) string {
	if body == nil {
		return ""
	}

	var parts []string
	switch b := body.(type) {
	case models.TextBody:
		parts = append(parts, b.Text)
	case models.ListBody:
		parts = append(parts, b.Title)
		parts = append(parts, b.Items...)
	}

	if src := body.Attribution(); src != "" {
		parts = append(parts, src)
	}

	return strings.Join(parts, " ")
}

// Preview returns a one-line summary of body for compact views:
// the text of a text note or the title of a list.
func Preview(body models.Body) string {
	switch b := body.(type) {
	case models.ListBody:
		if b.Title != "" {
			return b.Title
		}
		return strings.Join(b.Items, ", ")
	case models.TextBody:
		return b.Text
	default:
		return ""
	}
}
