// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// keyNode is one level of the dot-notation key space. Leaves have no
// children.
type keyNode struct {
	children map[string]*keyNode
}

func (n *keyNode) leaf() bool { return n.children == nil }

func (n *keyNode) names() string {
	names := make([]string, 0, len(n.children))
	for k := range n.children {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// keyTree mirrors the yaml tags of Config; struct fields become sections.
var keyTree = buildKeyTree(reflect.TypeOf(Config{}))

func buildKeyTree(t reflect.Type) *keyNode {
	n := &keyNode{children: make(map[string]*keyNode)}
	for i := range t.NumField() {
		field := t.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			continue
		}
		if field.Type.Kind() == reflect.Struct {
			n.children[name] = buildKeyTree(field.Type)
		} else {
			n.children[name] = &keyNode{}
		}
	}
	return n
}

// ValidateKeyPath checks that a dot-notation key path names a Config field
// or section.
func ValidateKeyPath(keyPath string) error {
	if keyPath == "" {
		return fmt.Errorf("empty key path")
	}
	node := keyTree
	var walked []string
	for _, part := range strings.Split(keyPath, ".") {
		if node.leaf() {
			return fmt.Errorf("key %q is a scalar; cannot use sub-keys", strings.Join(walked, "."))
		}
		next, ok := node.children[part]
		if !ok {
			if len(walked) == 0 {
				return fmt.Errorf("unknown key %q; valid top-level keys: %s", part, node.names())
			}
			section := strings.Join(walked, ".")
			return fmt.Errorf("unknown %s field %q; valid fields: %s", section, part, node.names())
		}
		walked = append(walked, part)
		node = next
	}
	return nil
}

// GetValue retrieves a value from a Config by dot-notation key path.
// Sections come back as maps. Zero values are not found.
func GetValue(cfg *Config, keyPath string) (any, error) {
	m, err := ToMap(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}

	var current any = m
	for _, part := range strings.Split(keyPath, ".") {
		section, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("key %q: parent is not a map", part)
		}
		if current, ok = section[part]; !ok {
			return nil, fmt.Errorf("key %q not found", keyPath)
		}
	}
	return current, nil
}

// SetValue sets a value in a raw YAML map by dot-notation key path,
// creating sections as needed. The value is read as a YAML scalar.
func SetValue(data map[string]any, keyPath string, rawValue string) error {
	if keyPath == "" {
		return fmt.Errorf("empty key path")
	}
	parts := strings.Split(keyPath, ".")
	last := len(parts) - 1

	section := data
	for _, part := range parts[:last] {
		child, ok := section[part]
		if !ok {
			child = make(map[string]any)
			section[part] = child
		}
		next, ok := child.(map[string]any)
		if !ok {
			return fmt.Errorf("key %q is not a map", part)
		}
		section = next
	}
	section[parts[last]] = coerceValue(rawValue)
	return nil
}

// UnsetValue removes keyPath from a raw YAML map and prunes sections left
// empty. It reports whether anything was removed.
func UnsetValue(data map[string]any, keyPath string) bool {
	head, rest, nested := strings.Cut(keyPath, ".")
	if !nested {
		_, ok := data[head]
		delete(data, head)
		return ok
	}
	section, ok := data[head].(map[string]any)
	if !ok || !UnsetValue(section, rest) {
		return false
	}
	if len(section) == 0 {
		delete(data, head)
	}
	return true
}

// FlattenMap recursively flattens a nested map to dot-notation keys.
func FlattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		sub, ok := v.(map[string]any)
		if !ok {
			result[key] = v
			continue
		}
		for sk, sv := range FlattenMap(sub, key) {
			result[sk] = sv
		}
	}
	return result
}

// ToMap marshals a Config to a map via YAML round-trip. Zero values are
// omitted.
func ToMap(cfg *Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	m := make(map[string]any)
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// coerceValue resolves s the way a YAML scalar would be: bool, int, float
// or string. Anything that is not a plain scalar stays the raw string.
func coerceValue(s string) any {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	switch v.(type) {
	case bool, int, float64, string:
		return v
	default:
		return s
	}
}
