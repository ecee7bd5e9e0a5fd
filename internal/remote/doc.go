// Package remote provides an HTTP implementation of the domain.Calculator
// interface, talking to a running `calcpad serve`.
//
// The server's API is stateless: the caller sends the state it owns together
// with a press script and receives the next state. This lets the command line
// keep its session locally while delegating the arithmetic to a server.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as errors with the HTTP method,
// path, status text and the server's error message.
package remote
