package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"calcpad/internal/calc"
	"calcpad/internal/domain"
	"calcpad/internal/input"
)

const controlWriteWait = time.Second

// clientMessage is one press sent by the page.
type clientMessage struct {
	Type  string `json:"type"`            // "key" or "button"
	Key   string `json:"key,omitempty"`   // KeyboardEvent.key
	Label string `json:"label,omitempty"` // button label
}

// displayMessage is what the page renders after each press.
type displayMessage struct {
	Display string `json:"display"`
	Op      string `json:"op"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(controlWriteWait))
			_ = conn.Close()
		case <-done:
		}
	}()

	s.logger.Debug("websocket connected", "remote", r.RemoteAddr)
	state := domain.InitialState()
	if err := conn.WriteJSON(render(state)); err != nil {
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read", "remote", r.RemoteAddr, "err", err)
			}
			break
		}

		var msg clientMessage
		if err = json.Unmarshal(data, &msg); err != nil {
			s.logger.Debug("websocket message", "remote", r.RemoteAddr, "err", err)
			err = fmt.Errorf("malformed message: %w", err)
		} else {
			err = s.handleMessage(&state, msg)
		}
		reply := render(state)
		if err != nil {
			reply.Error = err.Error()
		}
		if err := conn.WriteJSON(reply); err != nil {
			break
		}
	}
	s.logger.Debug("websocket disconnected", "remote", r.RemoteAddr)
}

// handleMessage applies msg to state. Unmapped keys are ignored.
func (s *Server) handleMessage(state *domain.State, msg clientMessage) error {
	var ev domain.Event
	switch msg.Type {
	case "key":
		var ok bool
		if ev, ok = input.FromKey(msg.Key); !ok {
			return nil
		}
	case "button":
		var err error
		if ev, err = input.FromButton(msg.Label); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
	return calc.Apply(state, ev)
}

func render(state domain.State) displayMessage {
	return displayMessage{Display: state.Display, Op: state.Op.String()}
}
