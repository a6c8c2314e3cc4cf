package chainapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EncodeParams turns a Request params value into the positional
// parameter list sent to the node.
//
// A value whose JSON encoding is an array is the list itself, so []any,
// []int and [2]string all spread into positional parameters. Any other
// value is the single parameter. nil, JSON null and an empty array mean
// no parameters and yield a nil list.
func EncodeParams(params any) ([]json.RawMessage, error) {
	if params == nil {
		return nil, nil
	}
	data, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encode params: %w", err)
	}
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil, nil
	case len(data) > 0 && data[0] == '[':
		var list []json.RawMessage
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("encode params: %w", err)
		}
		if len(list) == 0 {
			return nil, nil
		}
		return list, nil
	default:
		return []json.RawMessage{data}, nil
	}
}
