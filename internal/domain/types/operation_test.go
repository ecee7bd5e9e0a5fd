package types_test

import (
	"encoding/json"
	"testing"

	. "github.com/onsi/gomega"

	"calcpad/internal/domain/types"
)

func TestParseOperation_SymbolsAndNames(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	cases := map[string]types.Operation{
		"":         types.OpNone,
		"+":        types.OpAdd,
		"add":      types.OpAdd,
		"-":        types.OpSubtract,
		"−":        types.OpSubtract,
		"*":        types.OpMultiply,
		"×":        types.OpMultiply,
		"Multiply": types.OpMultiply,
		"/":        types.OpDivide,
		"÷":        types.OpDivide,
		" div ":    types.OpDivide,
	}
	for in, want := range cases {
		got, err := types.ParseOperation(in)
		g.Expect(err).NotTo(HaveOccurred(), "input %q", in)
		g.Expect(got).To(Equal(want), "input %q", in)
	}
}

func TestParseOperation_Unknown(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := types.ParseOperation("%")
	g.Expect(err).To(MatchError(types.ErrUnknownOperation))
}

func TestState_JSONUsesSymbols(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	st := types.State{Display: "3", Operand: "9", Op: types.OpDivide}
	b, err := json.Marshal(st)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(b)).To(Equal(`{"display":"3","operand":"9","op":"÷","awaiting_entry":false}`))

	var back types.State
	g.Expect(json.Unmarshal(b, &back)).To(Succeed())
	g.Expect(back).To(Equal(st))
}

func TestInitialState(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	st := types.InitialState()
	g.Expect(st.Display).To(Equal("0"))
	g.Expect(st.Operand).To(BeEmpty())
	g.Expect(st.Op).To(Equal(types.OpNone))
	g.Expect(st.AwaitingEntry).To(BeTrue())
}
