package calc_test

import (
	"strconv"
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"calcpad/internal/calc"
	"calcpad/internal/domain"
)

var (
	digitRunes = []rune("0123456789.")
	operations = []domain.Operation{domain.OpAdd, domain.OpSubtract, domain.OpMultiply, domain.OpDivide}
)

// eventGen draws any event an adapter could deliver.
func eventGen() *rapid.Generator[domain.Event] {
	return rapid.Custom(func(t *rapid.T) domain.Event {
		switch rapid.IntRange(0, 9).Draw(t, "kind") {
		case 0, 1, 2, 3, 4, 5:
			return domain.DigitEvent(rapid.SampledFrom(digitRunes).Draw(t, "digit"))
		case 6, 7:
			return domain.OperationEvent(rapid.SampledFrom(operations).Draw(t, "op"))
		case 8:
			return domain.EqualsEvent()
		default:
			return domain.ClearEvent()
		}
	})
}

// TestEnterDigit_TwoDigits_Property proves that two digits on a fresh state
// concatenate, except that a leading "0" is replaced.
func TestEnterDigit_TwoDigits_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		d1 := rapid.SampledFrom(digitRunes).Draw(rt, "d1")
		d2 := rapid.SampledFrom(digitRunes).Draw(rt, "d2")

		st := domain.InitialState()
		if err := calc.ApplyAll(&st, domain.DigitEvent(d1), domain.DigitEvent(d2)); err != nil {
			rt.Fatalf("ApplyAll: %v", err)
		}

		want := string(d1) + string(d2)
		if d1 == '0' {
			want = string(d2)
		}
		if st.Display != want {
			rt.Fatalf("display %q, want %q", st.Display, want)
		}
	})
}

// TestEnterDigit_Sequence_Property proves that any digit string not starting
// with "0" is shown verbatim.
func TestEnterDigit_Sequence_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.StringMatching(`[1-9.][0-9.]{0,15}`).Draw(rt, "digits")

		st := domain.InitialState()
		for _, d := range s {
			if err := calc.EnterDigit(&st, d); err != nil {
				rt.Fatalf("EnterDigit(%q): %v", d, err)
			}
		}
		if st.Display != s {
			rt.Fatalf("display %q, want %q", st.Display, s)
		}
	})
}

// TestEvaluate_DivideByZero_Property proves that dividing anything by a
// numeric zero yields "Error".
func TestEvaluate_DivideByZero_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.String().Draw(rt, "a")
		zero := rapid.SampledFrom([]string{"0", "00", "0.", ".0", "0.000", "-0", "0e10"}).Draw(rt, "zero")

		if got := calc.Evaluate(a, zero, domain.OpDivide); got != domain.ErrorText {
			rt.Fatalf("Evaluate(%q, %q, ÷) = %q", a, zero, got)
		}
	})
}

// TestEvaluate_MatchesFloatArithmetic_Property proves that formatted operands
// round-trip through Evaluate.
func TestEvaluate_MatchesFloatArithmetic_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		x := rapid.Float64Range(-1e15, 1e15).Draw(rt, "x")
		y := rapid.Float64Range(-1e15, 1e15).Draw(rt, "y")
		a, b := calc.FormatNumber(x), calc.FormatNumber(y)

		checks := map[domain.Operation]float64{
			domain.OpAdd:      x + y,
			domain.OpSubtract: x - y,
			domain.OpMultiply: x * y,
		}
		for op, want := range checks {
			if got := calc.Evaluate(a, b, op); got != calc.FormatNumber(want) {
				rt.Fatalf("Evaluate(%s %s %s) = %s, want %s", a, op, b, got, calc.FormatNumber(want))
			}
		}
	})
}

// TestFormatNumber_RoundTrips_Property proves the formatted text parses back
// to the same value.
func TestFormatNumber_RoundTrips_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		x := rapid.Float64Range(-1e300, 1e300).Draw(rt, "x")
		if x == 0 {
			return
		}
		back, err := strconv.ParseFloat(calc.FormatNumber(x), 64)
		if err != nil {
			rt.Fatalf("ParseFloat(%q): %v", calc.FormatNumber(x), err)
		}
		if back != x {
			rt.Fatalf("round trip %v -> %q -> %v", x, calc.FormatNumber(x), back)
		}
	})
}

// TestApply_DisplayNeverEmpty_Property proves no event sequence empties the display.
func TestApply_DisplayNeverEmpty_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		evs := rapid.SliceOf(eventGen()).Draw(rt, "events")

		st := domain.InitialState()
		for _, ev := range evs {
			if err := calc.Apply(&st, ev); err != nil {
				rt.Fatalf("Apply(%s): %v", ev, err)
			}
			if st.Display == "" {
				rt.Fatalf("empty display after %s", ev)
			}
		}
	})
}

// TestClear_Idempotent_Property proves that Clear, once or twice, always
// lands on the initial state.
func TestClear_Idempotent_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		evs := rapid.SliceOf(eventGen()).Draw(rt, "events")

		st := domain.InitialState()
		_ = calc.ApplyAll(&st, evs...)

		calc.Clear(&st)
		once := st
		calc.Clear(&st)
		if st != once || st != domain.InitialState() {
			rt.Fatalf("clear not idempotent: %+v then %+v", once, st)
		}
	})
}

func TestClear_TwiceEqualsOnce(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	st := domain.InitialState()
	g.Expect(calc.ApplyAll(&st, domain.DigitEvent('8'), domain.OperationEvent(domain.OpAdd))).To(Succeed())
	calc.Clear(&st)
	once := st
	calc.Clear(&st)
	g.Expect(st).To(Equal(once))
}
