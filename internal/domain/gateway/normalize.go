package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The gateway has shipped at least three payload shapes for the same event:
// the transaction may sit under data.charge.attributes, under data directly,
// or at the top level. Each field is searched across those scopes in priority
// order and the first present value wins.

type kind int

const (
	kindString kind = iota
	kindNumber
)

type fieldSpec struct {
	name     string
	keys     []string
	kind     kind
	required bool
}

var eventFields = []fieldSpec{
	{name: "orderRef", keys: []string{"order_id", "order_number", "reference"}, kind: kindString, required: true},
	{name: "status", keys: []string{"status", "state"}, kind: kindString},
	{name: "transactionId", keys: []string{"transaction_id", "charge_id"}, kind: kindString},
	{name: "amount", keys: []string{"amount", "total"}, kind: kindNumber},
	{name: "currency", keys: []string{"currency"}, kind: kindString},
}

// acceptedEvents maps the gateway's event-type vocabulary onto the two types
// this pipeline processes. Everything else is deliberately not here.
var acceptedEvents = map[string]EventType{
	"approved":         EventApproved,
	"charge.approved":  EventApproved,
	"payment.approved": EventApproved,
	"declined":         EventDeclined,
	"charge.declined":  EventDeclined,
	"payment.declined": EventDeclined,
}

// Normalize extracts a canonical Event from a raw webhook body.
// Returns ErrMalformedPayload for unusable bodies and ErrUnrecognizedEvent
// for event types outside the accepted vocabulary.
func Normalize(raw []byte) (Event, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Event{}, fmt.Errorf("%w: empty body", ErrMalformedPayload)
	}

	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil {
		return Event{}, fmt.Errorf("%w: %s", ErrMalformedPayload, err.Error())
	}

	rawType, err := eventTypeOf(root)
	if err != nil {
		return Event{}, err
	}
	eventType, ok := acceptedEvents[rawType]
	if !ok {
		return Event{}, fmt.Errorf("%w: %q", ErrUnrecognizedEvent, rawType)
	}

	scopes := payloadScopes(root)

	values := make(map[string]any, len(eventFields))
	for _, f := range eventFields {
		v, found, err := lookup(scopes, f)
		if err != nil {
			return Event{}, err
		}
		if !found {
			if f.required {
				return Event{}, fmt.Errorf("%w: missing field %q", ErrMalformedPayload, f.name)
			}
			continue
		}
		values[f.name] = v
	}

	ev := Event{
		Type:     eventType,
		OrderRef: values["orderRef"].(string),
	}
	if v, ok := values["status"]; ok {
		ev.Status = v.(string)
	} else {
		// Older payloads omit the status; the event type is authoritative.
		ev.Status = string(eventType)
	}
	if v, ok := values["transactionId"]; ok {
		ev.TransactionID = v.(string)
	}
	if v, ok := values["amount"]; ok {
		ev.Amount = v.(float64)
	}
	if v, ok := values["currency"]; ok {
		ev.Currency = v.(string)
	}
	return ev, nil
}

// payloadScopes returns candidate objects in priority order:
// data.charge.attributes, data.charge, data, then the top level.
func payloadScopes(root map[string]any) []map[string]any {
	scopes := make([]map[string]any, 0, 4)
	if data, ok := asObject(root["data"]); ok {
		if charge, ok := asObject(data["charge"]); ok {
			if attrs, ok := asObject(charge["attributes"]); ok {
				scopes = append(scopes, attrs)
			}
			scopes = append(scopes, charge)
		}
		scopes = append(scopes, data)
	}
	return append(scopes, root)
}

// lookup finds the first present value for the field across scopes, checking
// the type strictly. Mismatched types are rejected, never coerced.
func lookup(scopes []map[string]any, f fieldSpec) (any, bool, error) {
	for _, scope := range scopes {
		for _, key := range f.keys {
			v, present := scope[key]
			if !present || v == nil {
				continue
			}
			switch f.kind {
			case kindString:
				s, ok := v.(string)
				if !ok {
					return nil, false, fmt.Errorf("%w: field %q is not a string", ErrMalformedPayload, f.name)
				}
				return s, true, nil
			case kindNumber:
				n, ok := v.(float64)
				if !ok {
					return nil, false, fmt.Errorf("%w: field %q is not a number", ErrMalformedPayload, f.name)
				}
				return n, true, nil
			}
		}
	}
	return nil, false, nil
}

// eventTypeOf reads the event type from the top level or from data.
func eventTypeOf(root map[string]any) (string, error) {
	scopes := []map[string]any{root}
	if data, ok := asObject(root["data"]); ok {
		scopes = append(scopes, data)
	}
	for _, scope := range scopes {
		for _, key := range []string{"event", "event_type", "type"} {
			v, present := scope[key]
			if !present || v == nil {
				continue
			}
			s, ok := v.(string)
			if !ok {
				return "", fmt.Errorf("%w: event type is not a string", ErrMalformedPayload)
			}
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: no event type", ErrUnrecognizedEvent)
}

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}
