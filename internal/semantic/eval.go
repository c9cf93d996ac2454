package semantic

import (
	"math"

	"github.com/hassan/laika/internal/lexer"
)

// fold computes the constant value of l op r.
//
// Values are nil (unknown), int64 or float64. Integer operands stay
// integers for + - * // and non-negative ^; / always yields a real;
// anything mixed with a real yields a real. Comparisons, division by
// zero and results that are not representable, including int64
// overflow, fold to nil.
func fold(op lexer.TokenType, l, r interface{}) interface{} {
	if l == nil || r == nil || op.IsComparison() {
		return nil
	}

	li, lint := l.(int64)
	ri, rint := r.(int64)

	if lint && rint {
		return foldInt(op, li, ri)
	}

	return foldReal(op, toFloat(l), toFloat(r))
}

func foldInt(op lexer.TokenType, l, r int64) interface{} {
	switch op {
	case lexer.TokenPlus:
		if v, ok := addInt(l, r); ok {
			return v
		}
		return nil
	case lexer.TokenMinus:
		if v, ok := subInt(l, r); ok {
			return v
		}
		return nil
	case lexer.TokenTimes:
		if v, ok := mulInt(l, r); ok {
			return v
		}
		return nil
	case lexer.TokenDivide:
		if r == 0 {
			return nil
		}
		return float64(l) / float64(r)
	case lexer.TokenIntegerDivide:
		if r == 0 || l == math.MinInt64 && r == -1 {
			return nil
		}
		return floorDiv(l, r)
	case lexer.TokenPow:
		if r < 0 {
			return foldReal(op, float64(l), float64(r))
		}
		if v, ok := ipow(l, r); ok {
			return v
		}
		return nil
	}

	return nil
}

func foldReal(op lexer.TokenType, l, r float64) interface{} {
	var v float64

	switch op {
	case lexer.TokenPlus:
		v = l + r
	case lexer.TokenMinus:
		v = l - r
	case lexer.TokenTimes:
		v = l * r
	case lexer.TokenDivide:
		if r == 0 {
			return nil
		}
		v = l / r
	case lexer.TokenIntegerDivide:
		if r == 0 {
			return nil
		}
		v = math.Floor(l / r)
	case lexer.TokenPow:
		if l == 0 && r < 0 {
			return nil
		}
		v = math.Pow(l, r)
	default:
		return nil
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return v
}

func addInt(l, r int64) (int64, bool) {
	if r > 0 && l > math.MaxInt64-r || r < 0 && l < math.MinInt64-r {
		return 0, false
	}
	return l + r, true
}

func subInt(l, r int64) (int64, bool) {
	if r < 0 && l > math.MaxInt64+r || r > 0 && l < math.MinInt64+r {
		return 0, false
	}
	return l - r, true
}

func mulInt(l, r int64) (int64, bool) {
	if l == 0 || r == 0 {
		return 0, true
	}

	if l == -1 && r == math.MinInt64 || r == -1 && l == math.MinInt64 {
		return 0, false
	}

	p := l * r
	if p/r != l {
		return 0, false
	}

	return p, true
}

// floorDiv rounds toward negative infinity.
func floorDiv(l, r int64) int64 {
	q := l / r
	if (l%r != 0) && ((l < 0) != (r < 0)) {
		q--
	}
	return q
}

// ipow computes b^e for e >= 0, reporting overflow.
func ipow(b, e int64) (int64, bool) {
	switch b {
	case 0:
		if e == 0 {
			return 1, true
		}
		return 0, true
	case 1:
		return 1, true
	case -1:
		if e%2 == 0 {
			return 1, true
		}
		return -1, true
	}

	res := int64(1)

	for ; e > 0; e-- {
		if abs(res) > math.MaxInt64/abs(b) {
			return 0, false
		}

		res *= b
	}

	return res, true
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func toFloat(v interface{}) float64 {
	switch v := v.(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	}
	return math.NaN()
}
