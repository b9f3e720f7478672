// Package jargon decides whether a code snippet needs entry-point
// boilerplate wrapped around it and performs the wrap.
package jargon

import (
	"fmt"
	"strings"
)

// Marker is the literal placeholder inside a jargon template that gets
// replaced with the user's code.
const Marker = "INSERT_HERE"

// Wrap substitutes code into template at the marker.
//
// The code is returned unchanged when the template is empty (no jargon
// defined) or when the key already appears in the code, meaning the user
// supplied their own entry point and wrapping would double it. The key test
// is a plain substring check, not a parse; a key that happens to appear
// inside a comment or string literal still suppresses wrapping.
func Wrap(code, template, key string) string {
	if template == "" {
		return code
	}
	if strings.Contains(code, key) {
		return code
	}
	return strings.Replace(template, Marker, code, 1)
}

// Validate checks a user-supplied jargon definition before it is persisted.
func Validate(template, key string) error {
	if !strings.Contains(template, Marker) {
		return fmt.Errorf("template must contain the %s marker", Marker)
	}
	if key == "" {
		return fmt.Errorf("jargon key must not be empty")
	}
	return nil
}
