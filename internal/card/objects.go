// Copyright 2026 The AdvanceCard Authors
// SPDX-License-Identifier: MIT

package card

import (
	"errors"
	"fmt"
	"sort"
)

// ObjectName identifies a settings object the host persists and edits in
// its property pane.
type ObjectName int

// Settings objects.
const (
	ObjectGeneral ObjectName = iota
	ObjectPrefix
	ObjectPostfix
	ObjectDataLabel
	ObjectCategoryLabel
	ObjectBackground
	ObjectStroke
	ObjectCondition
	ObjectTooltip
	ObjectAbout
	ObjectExternalLink
)

var objectNames = [...]string{
	"general",
	"prefixSettings",
	"postfixSettings",
	"dataLabelSettings",
	"categoryLabelSettings",
	"backgroundSettings",
	"strokeSettings",
	"conditionSettings",
	"tooltipSettings",
	"aboutSettings",
	"externalLink",
}

// objectAliases are alternative persisted names. Older reports persist the
// tooltip object under a misspelled name.
var objectAliases = map[string]ObjectName{
	"tootlipSettings": ObjectTooltip,
}

// ObjectNames lists every settings object.
func ObjectNames() []ObjectName {
	out := make([]ObjectName, len(objectNames))
	for i := range out {
		out[i] = ObjectName(i)
	}
	return out
}

// String returns the persisted object name.
func (o ObjectName) String() string {
	if o < 0 || int(o) >= len(objectNames) {
		return fmt.Sprintf("object(%d)", int(o))
	}
	return objectNames[o]
}

// ParseObjectName looks up a persisted object name, aliases included.
func ParseObjectName(s string) (ObjectName, bool) {
	for i, name := range objectNames {
		if name == s {
			return ObjectName(i), true
		}
	}
	o, ok := objectAliases[s]
	return o, ok
}

// Objects is host-persisted metadata: property values keyed by object name,
// then property name.
type Objects map[string]map[string]any

// Merge returns a copy of base with every property of overlay applied on top.
func Merge(base, overlay Objects) Objects {
	out := make(Objects, len(base)+len(overlay))
	for _, src := range []Objects{base, overlay} {
		for obj, props := range src {
			dst, ok := out[obj]
			if !ok {
				dst = make(map[string]any, len(props))
				out[obj] = dst
			}
			for k, v := range props {
				dst[k] = v
			}
		}
	}
	return out
}

// Parse builds settings from host metadata layered over the defaults.
// Unknown objects and properties are ignored. Every value that cannot be
// decoded is reported; the returned settings keep defaults for those.
func Parse(objects Objects) (*Settings, error) {
	s := Defaults()
	return s, s.Apply(objects)
}

// Apply overlays host metadata onto s.
func (s *Settings) Apply(objects Objects) error {
	var errs []error
	for _, objName := range sortedObjectKeys(objects) {
		obj, ok := ParseObjectName(objName)
		if !ok {
			continue
		}
		props := objects[objName]
		keys := make([]string, 0, len(props))
		for k := range props {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			p, ok := lookupProperty(obj, key)
			if !ok {
				continue
			}
			if err := p.set(s, props[key]); err != nil {
				errs = append(errs, fmt.Errorf("%s.%s: %w", objName, key, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Set assigns one persisted property.
func (s *Settings) Set(obj ObjectName, name string, value any) error {
	p, ok := lookupProperty(obj, name)
	if !ok {
		return fmt.Errorf("%s.%s: %w", obj, name, ErrUnknownProperty)
	}
	if err := p.set(s, value); err != nil {
		return fmt.Errorf("%s.%s: %w", obj, name, err)
	}
	return nil
}

// Properties returns the persisted form of every property of obj.
func (s *Settings) Properties(obj ObjectName) map[string]any {
	props := schema[obj]
	out := make(map[string]any, len(props))
	for _, p := range props {
		out[p.name] = p.get(s)
	}
	return out
}

// Objects returns the persisted form of every settings object.
func (s *Settings) Objects() Objects {
	out := make(Objects, len(objectNames))
	for _, obj := range ObjectNames() {
		out[obj.String()] = s.Properties(obj)
	}
	return out
}

// PropertyNames lists the persisted property names of obj in schema order.
func PropertyNames(obj ObjectName) []string {
	props := schema[obj]
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.name
	}
	return out
}

// HasProperty reports whether obj persists a property called name.
func HasProperty(obj ObjectName, name string) bool {
	_, ok := lookupProperty(obj, name)
	return ok
}

func sortedObjectKeys(objects Objects) []string {
	keys := make([]string, 0, len(objects))
	for k := range objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
