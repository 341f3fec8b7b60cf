package model

import (
	"bytes"
	"fmt"
	"math/big"

	json "github.com/goccy/go-json"
)

// Share is an exact statutory fraction. The zero value is 0.
type Share struct {
	rat *big.Rat
}

func NewShare(num, den int64) Share {
	return Share{rat: big.NewRat(num, den)}
}

// ShareFromRat copies r into a new Share.
func ShareFromRat(r *big.Rat) Share {
	return Share{rat: new(big.Rat).Set(r)}
}

// Rat returns a copy of the underlying fraction.
func (s Share) Rat() *big.Rat {
	if s.rat == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(s.rat)
}

func (s Share) IsZero() bool {
	return s.rat == nil || s.rat.Sign() == 0
}

func (s Share) Equal(other Share) bool {
	return s.Rat().Cmp(other.Rat()) == 0
}

// Float64 is for display only.
func (s Share) Float64() float64 {
	f, _ := s.Rat().Float64()
	return f
}

func (s Share) String() string {
	return s.Rat().RatString()
}

func (s Share) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts "1/4", "0.25" or a bare number.
func (s *Share) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		s.rat = nil
		return nil
	}
	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
	}
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return fmt.Errorf("invalid inheritance share %q", text)
	}
	if r.Sign() < 0 || r.Cmp(big.NewRat(1, 1)) > 0 {
		return fmt.Errorf("inheritance share %q outside [0, 1]", text)
	}
	s.rat = r
	return nil
}
