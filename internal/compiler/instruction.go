package compiler

import "fmt"

// Op is the opcode of a stack-machine instruction.
type Op int

const (
	Push Op = iota // push Value
	Load           // push input Index
	Not
	And
	Or
	Xor
)

func (op Op) String() string {
	switch op {
	case Push:
		return "PUSH"
	case Load:
		return "LOAD"
	case Not:
		return "NOT"
	case And:
		return "AND"
	case Or:
		return "OR"
	case Xor:
		return "XOR"
	default:
		return "UNKNOWN"
	}
}

// Instruction is one step of a compiled program. Value is only meaningful for Push and
// Index only for Load.
type Instruction struct {
	Op    Op   `json:"op"`
	Value bool `json:"value,omitempty"`
	Index int  `json:"index,omitempty"`
}

func PushInstr(v bool) Instruction { return Instruction{Op: Push, Value: v} }
func LoadInstr(i int) Instruction  { return Instruction{Op: Load, Index: i} }

func (in Instruction) String() string {
	switch in.Op {
	case Push:
		return fmt.Sprintf("PUSH %t", in.Value)
	case Load:
		return fmt.Sprintf("LOAD %d", in.Index)
	default:
		return in.Op.String()
	}
}

// MarshalText lets Op appear by name in JSON output.
func (op Op) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (op *Op) UnmarshalText(text []byte) error {
	for candidate := Push; candidate <= Xor; candidate++ {
		if candidate.String() == string(text) {
			*op = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown opcode %q", text)
}
