// Package ir defines the pseudo-assembly produced for each source line and
// the Builder that generates it from an analyzed AST.
//
// The target machine has an unbounded register file. Each line gets a
// fresh set of registers R0, R1, ... and no register is ever reassigned
// within a line, apart from the in-place FL.i int-to-float conversion.
// Memory is addressed by name (@x) or by a register holding an address.
package ir

import (
	"strconv"
	"strings"
)

// OperandKind is the kind of an instruction operand.
type OperandKind int

const (
	OperandRegister  OperandKind = iota // R3
	OperandImmediate                    // #23, #2.5
	OperandAddress                      // @x, @print
)

// Operand is a register, an immediate literal or a named address.
type Operand struct {
	Kind OperandKind
	Reg  int
	Text string
}

// Reg returns register operand Rn.
func Reg(n int) Operand {
	return Operand{Kind: OperandRegister, Reg: n}
}

// Imm returns an immediate operand with the literal text.
func Imm(text string) Operand {
	return Operand{Kind: OperandImmediate, Text: text}
}

// Addr returns the named address operand @name.
func Addr(name string) Operand {
	return Operand{Kind: OperandAddress, Text: name}
}

func (o Operand) String() string {
	switch o.Kind {
	case OperandRegister:
		return "R" + strconv.Itoa(o.Reg)
	case OperandImmediate:
		return "#" + o.Text
	case OperandAddress:
		return "@" + o.Text
	default:
		return "?"
	}
}

// Opcode is an instruction mnemonic without its type suffix.
type Opcode int

const (
	OpLoad Opcode = iota
	OpStore
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpExp
	OpFloat // int to float conversion, FL.i
	OpNe
	OpEq
	OpGt
	OpGe
	OpLt
	OpLe

	// OpError marks a line that failed analysis.
	OpError

	// OpComment is a "# text" line.
	OpComment
)

func (op Opcode) String() string {
	switch op {
	case OpLoad:
		return "LD"
	case OpStore:
		return "ST"
	case OpAdd:
		return "ADD"
	case OpSub:
		return "SUB"
	case OpMul:
		return "MUL"
	case OpDiv:
		return "DIV"
	case OpExp:
		return "EXP"
	case OpFloat:
		return "FL"
	case OpNe:
		return "NE"
	case OpEq:
		return "EQ"
	case OpGt:
		return "GT"
	case OpGe:
		return "GE"
	case OpLt:
		return "LT"
	case OpLe:
		return "LE"
	case OpError:
		return "ERROR"
	case OpComment:
		return "#"
	default:
		return "?"
	}
}

// Instruction is one line of output.
type Instruction struct {
	Op Opcode

	// Suffix is the type variant, "i" or "f", for typed opcodes.
	Suffix string

	Operands []Operand

	// Comment is the text of OpComment.
	Comment string
}

// Mnemonic returns the opcode with its suffix, e.g. "ADD.i".
func (in Instruction) Mnemonic() string {
	if in.Suffix == "" {
		return in.Op.String()
	}
	return in.Op.String() + "." + in.Suffix
}

// String renders the instruction as written to the assembly dump.
func (in Instruction) String() string {
	if in.Op == OpComment {
		return "# " + in.Comment
	}

	var b strings.Builder

	b.WriteString(in.Mnemonic())

	for _, o := range in.Operands {
		b.WriteByte(' ')
		b.WriteString(o.String())
	}

	return b.String()
}

// Comment returns a comment instruction.
func Comment(text string) Instruction {
	return Instruction{Op: OpComment, Comment: text}
}

// Error returns the failed line marker.
func Error() Instruction {
	return Instruction{Op: OpError}
}
