package ir

import (
	"fmt"
	"strconv"

	"tlog.app/go/tlog"

	"github.com/hassan/laika/internal/diag"
	"github.com/hassan/laika/internal/lexer"
	"github.com/hassan/laika/internal/parser/ast"
	"github.com/hassan/laika/internal/semantic/types"
)

// Symbols is the view of the symbol table the generator needs.
type Symbols interface {
	// TypeOf returns the operand type of a variable.
	TypeOf(name string) types.Type

	// ListLen returns the size of a list variable.
	ListLen(name string) (int, bool)
}

// Source is one analyzed line handed to the generator.
type Source struct {
	Line int
	Root ast.Expr

	// Err is the parse or semantic failure of the line, if any.
	Err error

	// Types returns the type analysis gave a node of Root, or types.Invalid.
	// Variables are typed from Symbols when it is nil or has no answer.
	Types func(ast.Expr) types.Type
}

// Builder generates instruction blocks from analyzed lines.
type Builder struct {
	symbols Symbols

	elementSize int
	printTarget string

	// per line state
	block   *Block
	nextReg int
	types   func(ast.Expr) types.Type
}

// Option configures a Builder.
type Option func(b *Builder)

// WithElementSize sets the width of one list slot in address units.
func WithElementSize(n int) Option {
	return func(b *Builder) {
		b.elementSize = n
	}
}

// WithPrintTarget sets the address bare expressions are stored to.
func WithPrintTarget(name string) Option {
	return func(b *Builder) {
		b.printTarget = name
	}
}

// NewBuilder creates a generator reading variable types from symbols.
func NewBuilder(symbols Symbols, opts ...Option) *Builder {
	b := &Builder{
		symbols:     symbols,
		elementSize: 4,
		printTarget: "print",
	}

	for _, o := range opts {
		o(b)
	}

	return b
}

// Build generates one block per source, in order.
func (b *Builder) Build(srcs []Source) *Program {
	p := &Program{}

	for _, src := range srcs {
		p.AddBlock(b.BuildLine(src))
	}

	return p
}

// BuildLine generates the block of a single line. It never fails: analysis
// errors become an ERROR marker and generation problems a "# ERROR:" comment.
func (b *Builder) BuildLine(src Source) (bb *Block) {
	b.block = NewBlock(src.Line)
	b.nextReg = 0
	b.types = src.Types

	if src.Err != nil {
		b.block.AddInstruction(Error())
		return b.block
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		tlog.Printw("generation failed", "line", src.Line, "err", r)

		bb = NewBlock(src.Line)
		bb.AddInstruction(Comment(fmt.Sprintf("ERROR: %v", r)))
	}()

	switch root := src.Root.(type) {
	case *ast.Assign, *ast.ListAssign, *ast.BinaryOp, *ast.ListAccess:
		b.buildRoot(root)
	case *ast.IntLiteral, *ast.RealLiteral, *ast.VarRef:
		b.block.AddInstruction(Comment("UNHANDLED OPERATION"))
	case *ast.ListDecl:
		panic(diag.Mismatch("list declaration must be assigned to a name"))
	default:
		panic(diag.Mismatch("unsupported line shape %T", root))
	}

	tlog.V("ir").Printw("block", "line", src.Line, "instructions", b.block.Len())

	return b.block
}

func (b *Builder) buildRoot(root ast.Expr) {
	switch root := root.(type) {
	case *ast.Assign, *ast.ListAssign:
		b.buildExpr(root)
	default:
		r, _ := b.buildExpr(root)
		b.emit(OpStore, "", Addr(b.printTarget), Reg(r))
	}
}

// buildExpr emits code leaving the value of e in a fresh register and
// returns that register and the value type.
func (b *Builder) buildExpr(e ast.Expr) (int, types.Type) {
	switch e := e.(type) {
	case *ast.IntLiteral:
		r := b.newReg()
		b.emit(OpLoad, "", Reg(r), Imm(strconv.FormatInt(e.Value, 10)))
		return r, types.Int
	case *ast.RealLiteral:
		r := b.newReg()
		b.emit(OpLoad, "", Reg(r), Imm(lexer.FormatReal(e.Value)))
		return r, types.Real
	case *ast.VarRef:
		r := b.newReg()
		b.emit(OpLoad, "", Reg(r), Addr(e.Name))
		return r, b.operandType(e)
	case *ast.BinaryOp:
		return b.buildBinary(e)
	case *ast.ListAccess:
		addr := b.buildAddress(e.Name, e.Index)
		r := b.newReg()
		b.emit(OpLoad, "", Reg(r), Reg(addr))
		return r, types.Int
	case *ast.Assign:
		if decl, ok := e.Value.(*ast.ListDecl); ok {
			return b.buildListDecl(e.Name, decl), types.Int
		}

		r, t := b.buildExpr(e.Value)
		b.emit(OpStore, "", Addr(e.Name), Reg(r))
		return r, t
	case *ast.ListAssign:
		addr := b.buildAddress(e.Name, e.Index)
		r, t := b.buildExpr(e.Value)
		b.emit(OpStore, "", Reg(addr), Reg(r))
		return r, t
	case *ast.ListDecl:
		panic(diag.Mismatch("list declaration must be assigned to a name"))
	}

	panic(diag.Mismatch("unsupported expression %T", e))
}

// buildBinary emits both operands, promotes INT sides to float where
// needed and combines them.
func (b *Builder) buildBinary(e *ast.BinaryOp) (int, types.Type) {
	l, lt := b.buildExpr(e.Left)
	r, rt := b.buildExpr(e.Right)

	op := binaryOpcode(e.Op())

	// comparisons always run on floats
	if e.Op().IsComparison() {
		b.promote(l, lt)
		b.promote(r, rt)

		res := b.newReg()
		b.emit(op, "f", Reg(res), Reg(l), Reg(r))

		return res, types.Int
	}

	t := types.Promote(lt, rt)

	if types.IsReal(t) {
		b.promote(l, lt)
		b.promote(r, rt)
	}

	res := b.newReg()
	b.emit(op, types.Suffix(t), Reg(res), Reg(l), Reg(r))

	if !types.IsNumeric(t) {
		t = types.Int
	}

	return res, t
}

// promote converts register r to float unless it already holds a REAL.
func (b *Builder) promote(r int, t types.Type) {
	if types.IsReal(t) {
		return
	}

	b.emit(OpFloat, "i", Reg(r), Reg(r))
}

// buildAddress emits base + index*elementSize for name[index] and returns
// the register holding the element address.
func (b *Builder) buildAddress(name string, index ast.Expr) int {
	base := b.newReg()
	b.emit(OpLoad, "", Reg(base), Addr(name))

	idx, _ := b.buildExpr(index)

	return b.offset(base, idx)
}

func (b *Builder) offset(base, idx int) int {
	size := b.newReg()
	b.emit(OpLoad, "", Reg(size), Imm(strconv.Itoa(b.elementSize)))

	off := b.newReg()
	b.emit(OpMul, "i", Reg(off), Reg(idx), Reg(size))

	addr := b.newReg()
	b.emit(OpAdd, "i", Reg(addr), Reg(base), Reg(off))

	return addr
}

// buildListDecl zero-fills every slot of list name and returns the
// register holding its base address.
func (b *Builder) buildListDecl(name string, decl *ast.ListDecl) int {
	n, ok := b.symbols.ListLen(name)
	if !ok {
		panic(diag.Mismatch("%s is not a list", name))
	}

	if b.types != nil {
		if want, got := types.NewList(n), b.types(decl); !want.Equals(got) {
			panic(diag.Mismatch("list %s has %d slots, declared as %v", name, n, got))
		}
	}

	zero := b.newReg()
	b.emit(OpLoad, "", Reg(zero), Imm("0"))

	base := b.newReg()
	b.emit(OpLoad, "", Reg(base), Addr(name))

	for i := 0; i < n; i++ {
		idx := b.newReg()
		b.emit(OpLoad, "", Reg(idx), Imm(strconv.Itoa(i)))

		addr := b.offset(base, idx)
		b.emit(OpStore, "", Reg(addr), Reg(zero))
	}

	return base
}

// operandType is the type of a variable load as of the point the line
// reads it, which differs from the table when the line reassigns the name.
// Lists load their base address, which is an integer.
func (b *Builder) operandType(e *ast.VarRef) types.Type {
	t := types.Type(types.Invalid)

	if b.types != nil {
		t = b.types(e)
	}

	if !types.IsNumeric(t) && !types.IsList(t) {
		t = b.symbols.TypeOf(e.Name)
	}

	if types.IsReal(t) {
		return types.Real
	}

	return types.Int
}

func (b *Builder) newReg() int {
	r := b.nextReg
	b.nextReg++
	return r
}

func (b *Builder) emit(op Opcode, suffix string, operands ...Operand) {
	b.block.AddInstruction(Instruction{
		Op:       op,
		Suffix:   suffix,
		Operands: operands,
	})
}

func binaryOpcode(tt lexer.TokenType) Opcode {
	switch tt {
	case lexer.TokenPlus:
		return OpAdd
	case lexer.TokenMinus:
		return OpSub
	case lexer.TokenTimes:
		return OpMul
	case lexer.TokenDivide, lexer.TokenIntegerDivide:
		return OpDiv
	case lexer.TokenPow:
		return OpExp
	case lexer.TokenEqual:
		return OpEq
	case lexer.TokenNotEqual:
		return OpNe
	case lexer.TokenGreater:
		return OpGt
	case lexer.TokenGreaterEqual:
		return OpGe
	case lexer.TokenLess:
		return OpLt
	case lexer.TokenLessEqual:
		return OpLe
	}

	panic(diag.Mismatch("unsupported operator %v", tt))
}
