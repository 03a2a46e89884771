package defs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SpawnOp is one opcode of the spawn script.
type SpawnOp int

const (
	OpSetInterval SpawnOp = iota
	OpSpawnNormal
	OpSpawnFast
	OpSpawnBoss
)

// ErrMalformedScript is returned for spawn scripts that cannot be interpreted.
var ErrMalformedScript = errors.New("malformed spawn script")

// SpawnInstruction — одна команда скрипта волн: опкод и его значение.
// Для SpawnX значение — сколько врагов ещё осталось выпустить,
// для SetInterval — период таймера в миллисекундах.
type SpawnInstruction struct {
	Op    SpawnOp
	Count int
}

// DefaultSpawnScript describes the three standard waves.
const DefaultSpawnScript = "T,5000,N,5,F,3,B,1," +
	"T,2000,N,5,F,3,B,2," +
	"T,1500,F,5,N,3,B,10"

var opcodes = map[string]SpawnOp{
	"T": OpSetInterval,
	"N": OpSpawnNormal,
	"F": OpSpawnFast,
	"B": OpSpawnBoss,
}

// EnemyKind returns the kind spawned by a spawn opcode.
func (op SpawnOp) EnemyKind() (EnemyKind, bool) {
	switch op {
	case OpSpawnNormal:
		return EnemyNormal, true
	case OpSpawnFast:
		return EnemyFast, true
	case OpSpawnBoss:
		return EnemyBoss, true
	default:
		return "", false
	}
}

func (op SpawnOp) String() string {
	switch op {
	case OpSetInterval:
		return "T"
	case OpSpawnNormal:
		return "N"
	case OpSpawnFast:
		return "F"
	case OpSpawnBoss:
		return "B"
	default:
		return "?"
	}
}

// ParseSpawnScript converts a comma separated token stream ("T,5000,N,5")
// into an instruction queue. Odd token counts are rejected, never truncated.
func ParseSpawnScript(script string) ([]SpawnInstruction, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return []SpawnInstruction{}, nil
	}

	tokens := strings.Split(script, ",")
	if len(tokens)%2 != 0 {
		return nil, fmt.Errorf("%w: odd token count %d", ErrMalformedScript, len(tokens))
	}

	instructions := make([]SpawnInstruction, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		opToken := strings.TrimSpace(tokens[i])
		op, ok := opcodes[opToken]
		if !ok {
			return nil, fmt.Errorf("%w: unknown opcode %q at token %d", ErrMalformedScript, opToken, i)
		}
		value, err := strconv.Atoi(strings.TrimSpace(tokens[i+1]))
		if err != nil {
			return nil, fmt.Errorf("%w: bad value for %s at token %d: %v", ErrMalformedScript, opToken, i+1, err)
		}
		if value < 0 {
			return nil, fmt.Errorf("%w: negative value %d for %s", ErrMalformedScript, value, opToken)
		}
		instructions = append(instructions, SpawnInstruction{Op: op, Count: value})
	}
	return instructions, nil
}
