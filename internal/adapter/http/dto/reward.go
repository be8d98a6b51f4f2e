package dto

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

var maxReward = decimal.NewFromInt(math.MaxInt64)

// Reward is a gold reward as clients send it: an integer, a float, a numeric
// string, or nothing. It never fails to decode; anything unusable is zero.
type Reward int64

func (r *Reward) UnmarshalJSON(data []byte) error {
	*r = Reward(ParseReward(data))
	return nil
}

// ParseReward floors a JSON number or numeric string to a non-negative
// integer. Missing, malformed, negative or out-of-range values yield 0.
func ParseReward(raw json.RawMessage) int64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0
		}
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0
	}
	d = d.Floor()
	if d.IsNegative() || d.GreaterThan(maxReward) {
		return 0
	}
	return d.IntPart()
}
