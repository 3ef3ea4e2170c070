package domain

import (
	"encoding/json"
	"maps"
)

// HealthStatus keeps every field the API reports, with status and
// timestamp lifted out.
type HealthStatus struct {
	Status    string
	Timestamp string
	Details   map[string]any
}

func (h *HealthStatus) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*h = HealthStatus{Details: map[string]any{}}
	for k, v := range raw {
		switch k {
		case "status":
			h.Status, _ = v.(string)
		case "timestamp":
			h.Timestamp, _ = v.(string)
		default:
			h.Details[k] = v
		}
	}
	return nil
}

func (h HealthStatus) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(h.Details)+2)
	maps.Copy(out, h.Details)
	out["status"] = h.Status
	if h.Timestamp != "" {
		out["timestamp"] = h.Timestamp
	}
	return json.Marshal(out)
}

func (h HealthStatus) IsUp() bool {
	switch h.Status {
	case "UP", "up", "ok", "OK", "healthy":
		return true
	}
	return false
}
