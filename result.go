package cliparser

import (
	"encoding/json"
)

// Value is an optional string. The zero Value is absent.
type Value struct {
	value string
	isSet bool
}

func NewValue(value string) Value {
	return Value{value: value, isSet: true}
}

func (v Value) Get() (value string, ok bool) {
	return v.value, v.isSet
}

func (v Value) IsSet() bool {
	return v.isSet
}

func (v Value) String() string {
	return v.value
}

// MarshalJSON encodes absent value as null
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.isSet {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}

// Result maps names of the matched arguments to their values.
// Flags have absent values, inputs and params have values.
type Result map[string]Value

// Has reports whether the argument was matched
func (r Result) Has(name string) bool {
	_, has := r[name]
	return has
}

// Lookup returns the value of a matched input or param
func (r Result) Lookup(name string) (value string, ok bool) {
	return r[name].Get()
}

// insert returns false if the name is already present
func (r Result) insert(name string, value Value) bool {
	if _, exists := r[name]; exists {
		return false
	}
	r[name] = value
	return true
}
