package image

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const unknownErrorMessage = "unknown error"

// errorBodyKind enumerates the error payload shapes the provider is known to
// return, plus fallbacks for anything else.
type errorBodyKind int

const (
	bodyUnreadable   errorBodyKind = iota // read failed or empty
	bodyErrorString                       // {"error": "..."}
	bodyDetailString                      // {"detail": "..."}
	bodyDetailList                        // {"detail": [{"type": "...", "msg": "..."}]}
	bodyDetailObject                      // {"detail": {...}}
	bodyOtherJSON                         // valid JSON without a usable field
	bodyText                              // not JSON
)

type detailItem struct {
	Type string
	Msg  string
	Raw  string // used when the element is not an object
}

type errorBody struct {
	kind  errorBodyKind
	text  string
	items []detailItem
}

// parseErrorBody classifies a failed response body. It never fails.
func parseErrorBody(raw []byte, readErr error) errorBody {
	trimmed := bytes.TrimSpace(raw)
	if readErr != nil || len(trimmed) == 0 {
		return errorBody{kind: bodyUnreadable}
	}
	if !json.Valid(trimmed) {
		return errorBody{kind: bodyText, text: string(trimmed)}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		// Valid JSON that is not an object.
		return errorBody{kind: bodyOtherJSON, text: compactJSON(trimmed)}
	}

	if raw, ok := fields["error"]; ok {
		var s string
		if json.Unmarshal(raw, &s) == nil && s != "" {
			return errorBody{kind: bodyErrorString, text: s}
		}
	}

	if raw, ok := fields["detail"]; ok {
		if b, ok := parseDetail(raw); ok {
			return b
		}
	}

	return errorBody{kind: bodyOtherJSON, text: compactJSON(trimmed)}
}

func parseDetail(raw json.RawMessage) (errorBody, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return errorBody{}, false
	}
	switch raw[0] {
	case '"':
		var s string
		if json.Unmarshal(raw, &s) != nil || s == "" {
			return errorBody{}, false
		}
		return errorBody{kind: bodyDetailString, text: s}, true
	case '[':
		var elems []json.RawMessage
		if json.Unmarshal(raw, &elems) != nil || len(elems) == 0 {
			return errorBody{}, false
		}
		items := make([]detailItem, 0, len(elems))
		for _, elem := range elems {
			var item struct {
				Type string `json:"type"`
				Msg  string `json:"msg"`
			}
			if json.Unmarshal(elem, &item) != nil {
				items = append(items, detailItem{Raw: compactJSON(elem)})
				continue
			}
			items = append(items, detailItem{Type: item.Type, Msg: item.Msg})
		}
		return errorBody{kind: bodyDetailList, items: items}, true
	case 'n':
		return errorBody{}, false
	default:
		return errorBody{kind: bodyDetailObject, text: compactJSON(raw)}, true
	}
}

func (b errorBody) message() string {
	switch b.kind {
	case bodyDetailList:
		parts := make([]string, len(b.items))
		for i, item := range b.items {
			if item.Raw != "" {
				parts[i] = item.Raw
				continue
			}
			parts[i] = fmt.Sprintf("%s: %s", item.Type, item.Msg)
		}
		return strings.Join(parts, ", ")
	case bodyUnreadable:
		return unknownErrorMessage
	default:
		if b.text == "" {
			return unknownErrorMessage
		}
		return b.text
	}
}

// describeErrorBody renders a human-readable message for a failed response.
func describeErrorBody(raw []byte, readErr error) string {
	return parseErrorBody(raw, readErr).message()
}

func compactJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
