package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylebox.style'
func tracer() tracing.Trace {
	return tracing.Select("stylebox.style")
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Value
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds CSS properties. nil is a legal (empty) property map.
// A property map is the entity styling a document node: a styled node links
// to a property map, which contains zero or more properties.
//
// Property maps are built fresh for every element during styling and are
// not shared. There is no inheritance: a property not set for an element
// is simply absent.
type PropertyMap struct {
	m map[string]Value // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, kv := range pmap.Properties() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(kv.Key)
		b.WriteString(": ")
		b.WriteString(kv.Value.String())
	}
	b.WriteString("}")
	return b.String()
}

// Size returns the number of properties.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Value, bool) {
	if pmap == nil {
		return NullValue, false
	}
	v, ok := pmap.m[key]
	return v, ok
}

// Set a property's value. Overwrites an existing value, if present.
func (pmap *PropertyMap) Set(key string, v Value) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]Value)
	}
	pmap.m[key] = v
}

// Keys returns all property keys in sorted order.
func (pmap *PropertyMap) Keys() []string {
	if pmap == nil {
		return nil
	}
	keys := make([]string, 0, len(pmap.m))
	for k := range pmap.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Properties returns all properties, ordered by key.
func (pmap *PropertyMap) Properties() []KeyValue {
	keys := pmap.Keys()
	r := make([]KeyValue, len(keys))
	for i, k := range keys {
		r[i] = KeyValue{k, pmap.m[k]}
	}
	return r
}
