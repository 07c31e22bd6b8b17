package jsonx

import (
	jsoniter "github.com/json-iterator/go"
)

// Marshal stays compact; callers wanting indentation use MarshalIndent.
var _jsonx = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

var (
	Marshal       = _jsonx.Marshal
	Unmarshal     = _jsonx.Unmarshal
	MarshalIndent = _jsonx.MarshalIndent
	NewEncoder    = _jsonx.NewEncoder
	NewDecoder    = _jsonx.NewDecoder
)
