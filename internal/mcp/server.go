package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"calcpad/internal/calc"
	"calcpad/internal/domain"
	"calcpad/internal/input"
)

const stateURI = "calcpad://state"

// Server wires the calculator tools onto an MCP server.
type Server struct {
	sessions domain.SessionService
	logger   *slog.Logger
	mcp      *server.MCPServer
}

// New builds the MCP server. Tool calls share the state behind sessions.
func New(sessions domain.SessionService, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		sessions: sessions,
		logger:   logger,
		mcp: server.NewMCPServer(
			"calcpad",
			version,
			server.WithToolCapabilities(true),
			server.WithResourceCapabilities(false, false),
			server.WithRecovery(),
		),
	}
	s.addTools()
	s.addResources()
	return s
}

// MCPServer returns the underlying server, e.g. for an HTTP transport.
func (s *Server) MCPServer() *server.MCPServer { return s.mcp }

// ServeStdio serves MCP over stdin/stdout until the input is closed.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) addTools() {
	s.mcp.AddTool(mcpgo.NewTool("press",
		mcpgo.WithDescription("Press calculator keys. Each character is one press: digits and '.', "+
			"operators + - * / × ÷, '=' for equals, 'C' for clear. Operations apply left to right "+
			"with no precedence. Returns the display."),
		mcpgo.WithString("script",
			mcpgo.Required(),
			mcpgo.Description("Keys to press, e.g. \"12+3=\""),
		),
	), s.handlePress)

	s.mcp.AddTool(mcpgo.NewTool("evaluate",
		mcpgo.WithDescription("Evaluate a single operation a op b. Dividing by zero returns \"Error\"."),
		mcpgo.WithString("a", mcpgo.Required(), mcpgo.Description("First operand")),
		mcpgo.WithString("b", mcpgo.Required(), mcpgo.Description("Second operand")),
		mcpgo.WithString("op",
			mcpgo.Required(),
			mcpgo.Description("Operation: + - × ÷ (or add, subtract, multiply, divide)"),
		),
	), s.handleEvaluate)

	s.mcp.AddTool(mcpgo.NewTool("clear",
		mcpgo.WithDescription("Clear the calculator."),
	), s.handleClear)

	s.mcp.AddTool(mcpgo.NewTool("display",
		mcpgo.WithDescription("Show the calculator display."),
	), s.handleDisplay)
}

func (s *Server) addResources() {
	s.mcp.AddResource(mcpgo.NewResource(stateURI,
		"Calculator state",
		mcpgo.WithResourceDescription("Display, pending operand and operation of the calculator"),
		mcpgo.WithMIMEType("application/json"),
	), s.readState)
}

func (s *Server) handlePress(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	script, ok := request.GetArguments()["script"].(string)
	if !ok {
		return mcpgo.NewToolResultError("script is required"), nil
	}
	evs, err := input.ParseScript(script)
	if err != nil {
		return mcpgo.NewToolResultError(fmt.Sprintf("Invalid script: %v", err)), nil
	}
	state, err := s.sessions.Press(ctx, evs...)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("mcp press", "script", script, "display", state.Display)
	return mcpgo.NewToolResultText(state.Display), nil
}

func (s *Server) handleEvaluate(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	args := request.GetArguments()
	a, aok := args["a"].(string)
	b, bok := args["b"].(string)
	opText, opok := args["op"].(string)
	if !aok || !bok || !opok {
		return mcpgo.NewToolResultError("a, b and op are required"), nil
	}
	op, err := domain.ParseOperation(opText)
	if err != nil || op == domain.OpNone {
		return mcpgo.NewToolResultError(fmt.Sprintf("Unknown operation %q", opText)), nil
	}
	return mcpgo.NewToolResultText(calc.Evaluate(a, b, op)), nil
}

func (s *Server) handleClear(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	state, err := s.sessions.Clear(ctx)
	if err != nil {
		return nil, err
	}
	return mcpgo.NewToolResultText(state.Display), nil
}

func (s *Server) handleDisplay(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	state, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	return mcpgo.NewToolResultText(state.Display), nil
}

func (s *Server) readState(ctx context.Context, request mcpgo.ReadResourceRequest) ([]mcpgo.ResourceContents, error) {
	state, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcpgo.ResourceContents{
		mcpgo.TextResourceContents{
			URI:      stateURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
