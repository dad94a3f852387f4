package domain

// StripNils returns a copy of v with every nil value removed, at any depth.
// Maps are traversed key-wise, slices element-wise. The identity service
// rejects null metadata values, so payloads are cleaned before every write.
//
// The function is total and idempotent: cleaning an already-clean structure
// returns a structurally equal one.
func StripNils(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if item == nil {
				continue
			}
			out[k] = StripNils(item)
		}
		return out
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			if item == nil {
				continue
			}
			out = append(out, StripNils(item))
		}
		return out
	default:
		return v
	}
}

// StripNilsMap is a convenience wrapper for metadata bags.
func StripNilsMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return StripNils(m).(map[string]any)
}
