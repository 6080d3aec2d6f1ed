package codec

import (
	"strings"

	"github.com/wippyai/morse"
	"github.com/wippyai/morse/errors"
)

// Strategy names a decode strategy
type Strategy string

const (
	StrategyMap    Strategy = "map"
	StrategyTree   Strategy = "tree"
	StrategyOffset Strategy = "offset"
)

// DefaultStrategy is used when none is configured.
const DefaultStrategy = StrategyTree

// Strategies lists every supported strategy.
var Strategies = []Strategy{StrategyMap, StrategyTree, StrategyOffset}

func (s Strategy) String() string {
	return string(s)
}

// ParseStrategy resolves a strategy name. The empty string selects DefaultStrategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultStrategy, nil
	}
	for _, s := range Strategies {
		if string(s) == name {
			return s, nil
		}
	}
	return "", errors.NotFound(errors.PhaseConfig, "decode strategy", name)
}

// NewDecoder returns the decoder for s.
func NewDecoder(s Strategy) (morse.Decoder, error) {
	switch s {
	case StrategyMap:
		return SharedMapDecoder(), nil
	case StrategyTree, "":
		return TreeDecoder{}, nil
	case StrategyOffset:
		return OffsetDecoder{}, nil
	}
	return nil, errors.NotFound(errors.PhaseConfig, "decode strategy", string(s))
}
