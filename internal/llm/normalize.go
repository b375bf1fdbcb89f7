package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"strings"
)

// NormalizeOfferPayload
// - Unwraps the optional top-level "offer" envelope
// - Coerces numeric estimatedTime -> "N nap", string quantity -> number
// - Fills a missing item "source" from the customTask flag
// - Drops null/empty optionals and unknown keys (strict additionalProperties friendliness)
func NormalizeOfferPayload(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("normalize: decode: %w", err)
	}

	// 1) unwrap {"offer": {...}}
	if inner, ok := m["offer"].(map[string]any); ok {
		m = inner
	}

	dropped := make([]string, 0, 8)

	// 2) estimatedTime may arrive as a bare number of days
	if v, ok := m["estimatedTime"]; ok {
		switch t := v.(type) {
		case float64:
			m["estimatedTime"] = fmt.Sprintf("%d nap", int(t))
		case string:
			s := strings.TrimSpace(t)
			if s == "" {
				delete(m, "estimatedTime")
				dropped = append(dropped, "estimatedTime(empty)")
			} else {
				m["estimatedTime"] = s
			}
		case nil:
			delete(m, "estimatedTime")
			dropped = append(dropped, "estimatedTime(null)")
		}
	}

	// 3) trim string fields, dropping empties
	for _, k := range []string{"title", "location", "customerName", "offerSummary"} {
		if v, ok := m[k]; ok {
			s, isStr := v.(string)
			if !isStr {
				delete(m, k)
				dropped = append(dropped, k+"(type)")
				continue
			}
			s = strings.TrimSpace(s)
			if s == "" {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = s
			}
		}
	}

	// 4) normalize items
	if rawItems, ok := m["items"].([]any); ok {
		items := make([]any, 0, len(rawItems))
		for i, ri := range rawItems {
			item, ok := ri.(map[string]any)
			if !ok {
				dropped = append(dropped, fmt.Sprintf("items[%d](type)", i))
				continue
			}
			normalizeProposedItem(item, i, &dropped)
			items = append(items, item)
		}
		m["items"] = items
	} else if _, present := m["items"]; !present {
		m["items"] = []any{}
	}

	// 5) questions must be strings
	if rawQs, ok := m["questions"].([]any); ok {
		qs := make([]any, 0, len(rawQs))
		for _, q := range rawQs {
			if s, ok := q.(string); ok && strings.TrimSpace(s) != "" {
				qs = append(qs, strings.TrimSpace(s))
			}
		}
		m["questions"] = qs
	}

	// 6) remove unknown top-level keys
	allowed := map[string]struct{}{
		"title": {}, "location": {}, "customerName": {}, "estimatedTime": {},
		"offerSummary": {}, "items": {}, "questions": {},
	}
	for k := range maps.Clone(m) {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("normalize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.generate.normalize", "dropped", dropped)
	}
	return out, dropped, nil
}

func normalizeProposedItem(item map[string]any, idx int, dropped *[]string) {
	// quantity: model sometimes emits a numeric string
	if v, ok := item["quantity"]; ok {
		switch t := v.(type) {
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
				item["quantity"] = f
			} else {
				delete(item, "quantity")
				*dropped = append(*dropped, fmt.Sprintf("items[%d].quantity", idx))
			}
		case nil:
			delete(item, "quantity")
			*dropped = append(*dropped, fmt.Sprintf("items[%d].quantity(null)", idx))
		}
	}

	// source: default from the customTask flag when absent or invalid
	custom, _ := item["customTask"].(bool)
	src, _ := item["source"].(string)
	switch src {
	case "tenant", "global", "custom":
	default:
		if custom {
			item["source"] = "custom"
		} else {
			delete(item, "source")
		}
	}

	allowed := map[string]struct{}{
		"task": {}, "category": {}, "unit": {}, "quantity": {},
		"source": {}, "customTask": {}, "customReason": {},
	}
	for k := range maps.Clone(item) {
		if _, ok := allowed[k]; !ok {
			delete(item, k)
			*dropped = append(*dropped, fmt.Sprintf("items[%d].%s(unknown)", idx, k))
		}
	}
	for _, k := range []string{"task", "category", "unit", "customReason"} {
		if v, ok := item[k]; ok {
			if s, isStr := v.(string); isStr {
				item[k] = strings.TrimSpace(s)
			} else {
				delete(item, k)
				*dropped = append(*dropped, fmt.Sprintf("items[%d].%s(type)", idx, k))
			}
		}
	}
}

// ApplyOfferDefaults fills the typed fallback values for metadata the model
// left out. The item list is left as-is.
func ApplyOfferDefaults(d *OfferDraft) {
	if d.Title == "" {
		d.Title = "Új ajánlat"
	}
	if d.Location == "" {
		d.Location = "Helyszín nincs megadva"
	}
	if d.CustomerName == "" {
		d.CustomerName = "Új ügyfél"
	}
	if d.EstimatedTime == "" {
		d.EstimatedTime = "1-2 nap"
	}
}
