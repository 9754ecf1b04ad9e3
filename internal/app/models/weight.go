package models

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// Weight holds the weight answer. It carries the text the respondent typed
// until finalization converts it to pounds; on the wire it is a string, a
// number or null accordingly.
type Weight struct {
	Raw    *string
	Pounds *float64
}

func RawWeight(text string) Weight {
	return Weight{Raw: &text}
}

func WeightInPounds(pounds float64) Weight {
	return Weight{Pounds: &pounds}
}

func (w Weight) IsNull() bool {
	return w.Raw == nil && w.Pounds == nil
}

// IsRaw reports whether the weight still holds unconverted text.
func (w Weight) IsRaw() bool {
	return w.Pounds == nil && w.Raw != nil
}

func (w Weight) Clone() Weight {
	return Weight{Raw: clonePtr(w.Raw), Pounds: clonePtr(w.Pounds)}
}

func (w Weight) MarshalJSON() ([]byte, error) {
	switch {
	case w.Pounds != nil:
		return json.Marshal(*w.Pounds)
	case w.Raw != nil:
		return json.Marshal(*w.Raw)
	default:
		return []byte("null"), nil
	}
}

func (w *Weight) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*w = Weight{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		w.Raw = &raw
		return nil
	}

	var pounds float64
	if err := json.Unmarshal(data, &pounds); err != nil {
		return fmt.Errorf("weight_pounds must be a string, a number or null: %w", err)
	}
	w.Pounds = &pounds
	return nil
}

func (w Weight) MarshalYAML() (interface{}, error) {
	switch {
	case w.Pounds != nil:
		return *w.Pounds, nil
	case w.Raw != nil:
		return *w.Raw, nil
	default:
		return nil, nil
	}
}
