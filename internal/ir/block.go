package ir

import (
	"strings"
)

// Block is the instruction sequence generated for one source line.
type Block struct {
	// Line is the source line number the block was generated from.
	Line int

	Instructions []Instruction
}

// NewBlock creates an empty block for line.
func NewBlock(line int) *Block {
	return &Block{
		Line: line,
	}
}

// AddInstruction appends instr to the block.
func (bb *Block) AddInstruction(instr Instruction) {
	bb.Instructions = append(bb.Instructions, instr)
}

// Len returns the number of instructions.
func (bb *Block) Len() int {
	return len(bb.Instructions)
}

// IsError reports whether the block is the failed line marker.
func (bb *Block) IsError() bool {
	return len(bb.Instructions) == 1 && bb.Instructions[0].Op == OpError
}

// Lines returns the rendered instructions.
func (bb *Block) Lines() []string {
	lines := make([]string, len(bb.Instructions))

	for i, instr := range bb.Instructions {
		lines[i] = instr.String()
	}

	return lines
}

// String renders the block one instruction per line.
func (bb *Block) String() string {
	var sb strings.Builder

	for _, instr := range bb.Instructions {
		sb.WriteString(instr.String())
		sb.WriteString("\n")
	}

	return sb.String()
}

// Program is the ordered set of blocks of a whole input.
type Program struct {
	Blocks []*Block
}

// AddBlock appends bb to the program.
func (p *Program) AddBlock(bb *Block) {
	p.Blocks = append(p.Blocks, bb)
}

// String renders all blocks, each followed by an empty separator line.
func (p *Program) String() string {
	var sb strings.Builder

	for _, bb := range p.Blocks {
		sb.WriteString(bb.String())
		sb.WriteString("\n")
	}

	return sb.String()
}
