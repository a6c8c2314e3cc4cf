package types

import (
	"encoding/json"
	"fmt"
)

// RuntimeVersion describes the runtime a chain is executing, as returned
// by state_getRuntimeVersion.
type RuntimeVersion struct {
	SpecName           string       `json:"specName"`
	ImplName           string       `json:"implName"`
	AuthoringVersion   uint32       `json:"authoringVersion"`
	SpecVersion        uint32       `json:"specVersion"`
	ImplVersion        uint32       `json:"implVersion"`
	APIs               []RuntimeAPI `json:"apis"`
	TransactionVersion uint32       `json:"transactionVersion"`
	StateVersion       uint8        `json:"stateVersion"`
}

// HasAPI reports whether the runtime exposes the API with the given
// 0x-prefixed 8-byte identifier, and at which version.
func (v RuntimeVersion) HasAPI(id string) (uint32, bool) {
	for _, api := range v.APIs {
		if api.ID == id {
			return api.Version, true
		}
	}
	return 0, false
}

// RuntimeAPI is a runtime API identifier and its version. On the wire it
// is a two-element array: ["0xdf6acb689907609b", 4].
type RuntimeAPI struct {
	ID      string
	Version uint32
}

func (a RuntimeAPI) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{a.ID, a.Version})
}

func (a *RuntimeAPI) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("runtime api: expected [id, version], got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &a.ID); err != nil {
		return fmt.Errorf("runtime api id: %w", err)
	}
	if err := json.Unmarshal(pair[1], &a.Version); err != nil {
		return fmt.Errorf("runtime api version: %w", err)
	}
	return nil
}
