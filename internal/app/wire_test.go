package app

import (
	"bytes"
	"context"
	"os"
	"testing"

	. "github.com/onsi/gomega"

	"calcpad/internal/calc"
	"calcpad/internal/domain"
	"calcpad/internal/remote"
	"calcpad/internal/store"
)

func TestNewWire_LocalByDefault(t *testing.T) {
	g := NewWithT(t)

	w, err := NewWire(Config{Home: t.TempDir()})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(w.Calculator).To(BeAssignableToTypeOf(calc.Local{}))

	st, err := w.Sessions.Press(context.Background(),
		domain.DigitEvent('7'), domain.OperationEvent(domain.OpAdd), domain.DigitEvent('1'), domain.EqualsEvent())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(st.Display).To(Equal("8"))

	saved, ok, err := w.Store.LoadState()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeTrue())
	g.Expect(saved).To(Equal(st))
}

func TestNewWire_RemoteWithServerURL(t *testing.T) {
	g := NewWithT(t)

	w, err := NewWire(Config{Home: t.TempDir(), ServerURL: "http://127.0.0.1:1/"})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(w.Calculator).To(BeAssignableToTypeOf(&remote.HTTP{}))
}

func TestNewWire_EphemeralKeepsStateInMemory(t *testing.T) {
	g := NewWithT(t)
	home := t.TempDir()

	w, err := NewWire(Config{Home: home, Ephemeral: true})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(w.Store).To(BeAssignableToTypeOf(&store.MemoryStore{}))

	_, err = w.Sessions.Press(context.Background(), domain.DigitEvent('4'))
	g.Expect(err).NotTo(HaveOccurred())

	entries, err := os.ReadDir(home)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(entries).To(BeEmpty())
}

func TestNewWire_BadLogLevel(t *testing.T) {
	g := NewWithT(t)

	_, err := NewWire(Config{Home: t.TempDir(), LogLevel: "loud"})
	g.Expect(err).To(MatchError(ContainSubstring("loud")))
}

func TestNewLogger_Levels(t *testing.T) {
	g := NewWithT(t)

	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "info")
	g.Expect(err).NotTo(HaveOccurred())
	logger.Debug("hidden")
	logger.Info("shown", "k", "v")
	g.Expect(buf.String()).NotTo(ContainSubstring("hidden"))
	g.Expect(buf.String()).To(ContainSubstring("msg=shown k=v"))
}

func TestDefaultHome_Env(t *testing.T) {
	g := NewWithT(t)

	t.Setenv(HomeEnv, "/tmp/calcpad-test")
	h, err := DefaultHome()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(h).To(Equal("/tmp/calcpad-test"))
}
