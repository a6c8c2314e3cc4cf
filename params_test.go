package chainapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeParams(t *testing.T) {
	cases := []struct {
		name   string
		params any
		want   []string
	}{
		{name: "nil", params: nil},
		{name: "json_null", params: json.RawMessage("null")},
		{name: "empty_slice", params: []int{}},
		{name: "any_slice", params: []any{"0xabc", 7}, want: []string{`"0xabc"`, `7`}},
		{name: "typed_slice", params: []int{0}, want: []string{`0`}},
		{name: "array", params: [2]string{"a", "b"}, want: []string{`"a"`, `"b"`}},
		{name: "single_string", params: "0x01", want: []string{`"0x01"`}},
		{name: "single_number", params: 5, want: []string{`5`}},
		{name: "single_object", params: map[string]int{"n": 1}, want: []string{`{"n":1}`}},
		{name: "raw_array", params: json.RawMessage(` [1, "x"] `), want: []string{`1`, `"x"`}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncodeParams(tc.params)
			require.NoError(t, err)
			if tc.want == nil {
				require.Nil(t, got)
				return
			}
			require.Len(t, got, len(tc.want))
			for i, w := range tc.want {
				require.JSONEq(t, w, string(got[i]))
			}
		})
	}
}

func TestEncodeParams_Unencodable(t *testing.T) {
	_, err := EncodeParams(make(chan int))
	require.Error(t, err)
}
