package ir

import (
	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"tlog.app/go/errors"

	"github.com/hassan/laika/internal/lexer"
	"github.com/hassan/laika/internal/parser"
	"github.com/hassan/laika/internal/parser/ast"
	"github.com/hassan/laika/internal/semantic/types"
	"github.com/hassan/laika/internal/symtab"
)

func parse(src string, line int) ast.Expr {
	root, err := parser.Parse(lexer.Tokenize(src, line), line)
	Expect(err).NotTo(HaveOccurred())
	return root
}

var _ = Describe("Builder", func() {
	var (
		mockCtrl    *gomock.Controller
		mockSymbols *MockSymbols
		b           *Builder
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockSymbols = NewMockSymbols(mockCtrl)
		b = NewBuilder(mockSymbols)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	build := func(src string) []string {
		return b.BuildLine(Source{Line: 1, Root: parse(src, 1)}).Lines()
	}

	It("should add two integer literals", func() {
		Expect(build("(23+8)")).To(Equal([]string{
			"LD R0 #23",
			"LD R1 #8",
			"ADD.i R2 R0 R1",
			"ST @print R2",
		}))
	})

	It("should promote the integer side of mixed arithmetic", func() {
		Expect(build("2.5*0")).To(Equal([]string{
			"LD R0 #2.5",
			"LD R1 #0",
			"FL.i R1 R1",
			"MUL.f R2 R0 R1",
			"ST @print R2",
		}))
	})

	It("should store assignments to the named address", func() {
		Expect(build("x = 7 - 2")).To(Equal([]string{
			"LD R0 #7",
			"LD R1 #2",
			"SUB.i R2 R0 R1",
			"ST @x R2",
		}))
	})

	It("should read variable types from the symbol table", func() {
		mockSymbols.EXPECT().TypeOf("r").Return(types.Real).AnyTimes()
		mockSymbols.EXPECT().TypeOf("n").Return(types.Int).AnyTimes()

		Expect(build("n ^ r")).To(Equal([]string{
			"LD R0 @n",
			"LD R1 @r",
			"FL.i R0 R0",
			"EXP.f R2 R0 R1",
			"ST @print R2",
		}))
	})

	It("should use DIV for floor division", func() {
		mockSymbols.EXPECT().TypeOf("r").Return(types.Real).AnyTimes()

		Expect(build("7 // 2")).To(ContainElement("DIV.i R2 R0 R1"))
		Expect(build("r // 2")).To(Equal([]string{
			"LD R0 @r",
			"LD R1 #2",
			"FL.i R1 R1",
			"DIV.f R2 R0 R1",
			"ST @print R2",
		}))
	})

	It("should compare on floats", func() {
		mockSymbols.EXPECT().TypeOf("a").Return(types.Int).AnyTimes()

		Expect(build("a < 2")).To(Equal([]string{
			"LD R0 @a",
			"LD R1 #2",
			"FL.i R0 R0",
			"FL.i R1 R1",
			"LT.f R2 R0 R1",
			"ST @print R2",
		}))

		Expect(build("1.5 != a")).To(Equal([]string{
			"LD R0 #1.5",
			"LD R1 @a",
			"FL.i R1 R1",
			"NE.f R2 R0 R1",
			"ST @print R2",
		}))
	})

	It("should zero-fill a declared list", func() {
		mockSymbols.EXPECT().ListLen("x").Return(2, true)

		Expect(build("x = list[2]")).To(Equal([]string{
			"LD R0 #0",
			"LD R1 @x",
			"LD R2 #0",
			"LD R3 #4",
			"MUL.i R4 R2 R3",
			"ADD.i R5 R1 R4",
			"ST R5 R0",
			"LD R6 #1",
			"LD R7 #4",
			"MUL.i R8 R6 R7",
			"ADD.i R9 R1 R8",
			"ST R9 R0",
		}))
	})

	DescribeTable("list declaration length",
		func(n int) {
			mockSymbols.EXPECT().ListLen("v").Return(n, true)

			blk := b.BuildLine(Source{Line: 1, Root: parse("v = list[1]", 1)})
			Expect(blk.Len()).To(Equal(2 + 5*n))
		},
		Entry("one slot", 1),
		Entry("three slots", 3),
		Entry("ten slots", 10),
	)

	It("should write a list element", func() {
		mockSymbols.EXPECT().TypeOf("y").Return(types.Int).AnyTimes()

		Expect(build("x[1] = y")).To(Equal([]string{
			"LD R0 @x",
			"LD R1 #1",
			"LD R2 #4",
			"MUL.i R3 R1 R2",
			"ADD.i R4 R0 R3",
			"LD R5 @y",
			"ST R4 R5",
		}))
	})

	It("should read a list element as an integer", func() {
		mockSymbols.EXPECT().TypeOf("r").Return(types.Real).AnyTimes()

		Expect(build("z = x[0] + r")).To(Equal([]string{
			"LD R0 @x",
			"LD R1 #0",
			"LD R2 #4",
			"MUL.i R3 R1 R2",
			"ADD.i R4 R0 R3",
			"LD R5 R4",
			"LD R6 @r",
			"FL.i R5 R5",
			"ADD.f R7 R5 R6",
			"ST @z R7",
		}))
	})

	It("should print a bare list access", func() {
		Expect(build("x[2]")).To(Equal([]string{
			"LD R0 @x",
			"LD R1 #2",
			"LD R2 #4",
			"MUL.i R3 R1 R2",
			"ADD.i R4 R0 R3",
			"LD R5 R4",
			"ST @print R5",
		}))
	})

	It("should chain nested assignments", func() {
		Expect(build("a = b = 3")).To(Equal([]string{
			"LD R0 #3",
			"ST @b R0",
			"ST @a R0",
		}))
	})

	It("should not generate code for bare operands", func() {
		mockSymbols.EXPECT().TypeOf(gomock.Any()).Times(0)

		for _, src := range []string{"5", "2.5", "x"} {
			Expect(build(src)).To(Equal([]string{"# UNHANDLED OPERATION"}))
		}
	})

	It("should mark failed lines", func() {
		blk := b.BuildLine(Source{Line: 4, Err: errors.New("undefined")})

		Expect(blk.IsError()).To(BeTrue())
		Expect(blk.Line).To(Equal(4))
		Expect(blk.String()).To(Equal("ERROR\n"))
	})

	It("should replace the block when generation goes wrong", func() {
		mockSymbols.EXPECT().ListLen("x").Return(0, false)

		Expect(build("x = list[2]")).To(Equal([]string{"# ERROR: x is not a list"}))
		Expect(build("list[2]")).To(Equal([]string{"# ERROR: list declaration must be assigned to a name"}))
	})

	It("should restart registers on every line", func() {
		p := b.Build([]Source{
			{Line: 1, Root: parse("1 + 2", 1)},
			{Line: 2, Err: errors.New("syntax")},
			{Line: 3, Root: parse("y = 4", 3)},
		})

		Expect(p.Blocks).To(HaveLen(3))
		Expect(p.Blocks[2].Lines()).To(Equal([]string{"LD R0 #4", "ST @y R0"}))
		Expect(p.String()).To(Equal(
			"LD R0 #1\nLD R1 #2\nADD.i R2 R0 R1\nST @print R2\n\n" +
				"ERROR\n\n" +
				"LD R0 #4\nST @y R0\n\n"))
	})

	It("should type variables as analysis saw them", func() {
		// the table already holds the reassigned REAL x
		mockSymbols.EXPECT().TypeOf("x").Return(types.Real).AnyTimes()

		root := parse("x = x + 1.5", 2)
		read := root.(*ast.Assign).Value.(*ast.BinaryOp).Left

		seen := map[ast.Expr]types.Type{read: types.Int}
		lookup := func(e ast.Expr) types.Type {
			if t, ok := seen[e]; ok {
				return t
			}
			return types.Invalid
		}

		blk := b.BuildLine(Source{Line: 2, Root: root, Types: lookup})
		Expect(blk.Lines()).To(Equal([]string{
			"LD R0 @x",
			"LD R1 #1.5",
			"FL.i R0 R0",
			"ADD.f R2 R0 R1",
			"ST @x R2",
		}))
	})

	It("should fall back to the table for untyped variables", func() {
		mockSymbols.EXPECT().TypeOf("r").Return(types.Real)

		none := func(ast.Expr) types.Type { return types.Invalid }

		blk := b.BuildLine(Source{Line: 1, Root: parse("r * 2", 1), Types: none})
		Expect(blk.Lines()).To(ContainElement("MUL.f R2 R0 R1"))
	})

	It("should reject a list whose size disagrees with analysis", func() {
		mockSymbols.EXPECT().ListLen("x").Return(3, true)

		root := parse("x = list[2]", 1)
		decl := root.(*ast.Assign).Value

		lookup := func(e ast.Expr) types.Type {
			if e == decl {
				return types.NewList(2)
			}
			return types.Invalid
		}

		blk := b.BuildLine(Source{Line: 1, Root: root, Types: lookup})
		Expect(blk.Lines()).To(Equal([]string{"# ERROR: list x has 3 slots, declared as LIST[2]"}))
	})

	It("should honor element size and print target", func() {
		b = NewBuilder(mockSymbols, WithElementSize(8), WithPrintTarget("out"))

		Expect(build("x[1]")).To(Equal([]string{
			"LD R0 @x",
			"LD R1 #1",
			"LD R2 #8",
			"MUL.i R3 R1 R2",
			"ADD.i R4 R0 R3",
			"LD R5 R4",
			"ST @out R5",
		}))
	})
})

var _ = Describe("Builder with a symbol table", func() {
	It("should treat a whole list operand as an integer address", func() {
		tab := symtab.New()
		_, err := tab.Insert("l", symtab.List, lexer.Position{Line: 1}, []int64{0, 0})
		Expect(err).NotTo(HaveOccurred())
		_, err = tab.Insert("r", symtab.Scalar, lexer.Position{Line: 2}, 1.5)
		Expect(err).NotTo(HaveOccurred())

		b := NewBuilder(tab)

		blk := b.BuildLine(Source{Line: 3, Root: parse("l + r", 3)})
		Expect(blk.Lines()).To(Equal([]string{
			"LD R0 @l",
			"LD R1 @r",
			"FL.i R0 R0",
			"ADD.f R2 R0 R1",
			"ST @print R2",
		}))
	})
})

var _ = Describe("Instruction", func() {
	DescribeTable("rendering",
		func(in Instruction, want string) {
			Expect(in.String()).To(Equal(want))
		},
		Entry("load immediate", Instruction{Op: OpLoad, Operands: []Operand{Reg(0), Imm("23")}}, "LD R0 #23"),
		Entry("typed add", Instruction{Op: OpAdd, Suffix: "f", Operands: []Operand{Reg(2), Reg(0), Reg(1)}}, "ADD.f R2 R0 R1"),
		Entry("store address", Instruction{Op: OpStore, Operands: []Operand{Addr("x"), Reg(1)}}, "ST @x R1"),
		Entry("comment", Comment("UNHANDLED OPERATION"), "# UNHANDLED OPERATION"),
		Entry("error", Error(), "ERROR"),
	)

	It("should report its mnemonic", func() {
		Expect(Instruction{Op: OpFloat, Suffix: "i"}.Mnemonic()).To(Equal("FL.i"))
		Expect(Instruction{Op: OpLoad}.Mnemonic()).To(Equal("LD"))
	})
})
