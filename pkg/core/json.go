package core

import (
	"bytes"
	"encoding/json"
)

// unmarshalStrict decodes a single JSON value and rejects fields the layout does not define
func unmarshalStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
