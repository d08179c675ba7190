package humps

import (
	"fmt"
	"strings"

	"github.com/erraggy/keycase/caseerrors"
	"github.com/erraggy/keycase/internal/naming"
)

// Direction selects which way keys are transcoded.
type Direction int

const (
	// ToCamel rewrites keys to camelCase (outbound API payloads).
	ToCamel Direction = iota
	// ToSnake rewrites keys to snake_case (inbound API payloads).
	ToSnake
)

// String returns "camel" or "snake".
func (d Direction) String() string {
	switch d {
	case ToCamel:
		return "camel"
	case ToSnake:
		return "snake"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func (d Direction) valid() bool {
	return d == ToCamel || d == ToSnake
}

func (d Direction) convert(s string) string {
	if d == ToSnake {
		return naming.Decamelize(s)
	}
	return naming.Camelize(s)
}

// ParseDirection parses "camel", "camelize", "snake" or "decamelize" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "camel", "camelize", "camelcase":
		return ToCamel, nil
	case "snake", "decamelize", "snakecase", "snake_case":
		return ToSnake, nil
	default:
		return 0, &caseerrors.ConfigError{
			Option:  "direction",
			Value:   s,
			Message: "must be one of: camel, snake",
		}
	}
}
