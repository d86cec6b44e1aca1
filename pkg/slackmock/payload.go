package slackmock

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/mockbot/go-slackmock/pkg/stub"
)

// Payload mapping between stand-in outcomes and the real client's typed
// returns. An outcome payload may be a value of the exact response type
// (returned as-is), a stub.Payload / map (decoded through its JSON shape), or
// the built-in default, for which typed methods synthesize a plausible
// success.

func payloadMap(payload any) stub.Payload {
	switch p := payload.(type) {
	case stub.Payload:
		return p
	case map[string]any:
		return stub.Payload(p)
	default:
		return nil
	}
}

// decodeInto maps a payload onto a typed response through its JSON encoding,
// so test payloads use the same field names as the wire API.
func decodeInto(payload any, out any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return &Error{
			Code:    "bad_payload",
			Message: fmt.Sprintf("cannot encode stub payload: %v", err),
			Type:    "payload_error",
		}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{
			Code:    "bad_payload",
			Message: fmt.Sprintf("stub payload does not match %T: %v", out, err),
			Type:    "payload_error",
		}
	}
	return nil
}

// decodeField decodes a single key of a payload map into out, falling back to
// the whole map when the key is absent. Lets tests supply either the full
// wire envelope ({"ok":true,"user":{...}}) or just the inner object.
func decodeField(p stub.Payload, key string, out any) error {
	if p == nil {
		return nil
	}
	if inner, ok := p[key]; ok {
		return decodeInto(inner, out)
	}
	return decodeInto(p, out)
}

func stringField(p stub.Payload, key, fallback string) string {
	if p != nil {
		if s, ok := p[key].(string); ok {
			return s
		}
	}
	return fallback
}

func boolField(p stub.Payload, key string, fallback bool) bool {
	if p != nil {
		if b, ok := p[key].(bool); ok {
			return b
		}
	}
	return fallback
}

var tsCounter atomic.Int64

// nextTimestamp fabricates a unique Slack message timestamp for synthesized
// successes.
func nextTimestamp() string {
	n := tsCounter.Add(1)
	return fmt.Sprintf("%d.%06d", time.Now().Unix(), n%1_000_000)
}
