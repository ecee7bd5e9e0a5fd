// Package main runs the calcpad HTTP server on its own, for hosting the
// browser calculator or serving "calcpad press --server".
//
// HTTP API
//
//	GET /
//	    The calculator page.
//
//	GET /ws
//	    Websocket. The client sends {"type":"key","key":"7"} or
//	    {"type":"button","label":"×"}; the server replies with
//	    {"display":"7","op":""} after every message.
//
//	POST /api/press {"state": {...}, "script": "12+3="}
//	    Apply a press script to the given state and return {"state": {...}}.
//	    An empty state means the initial calculator.
//
//	POST /api/evaluate {"a": "1", "b": "2", "op": "+"}
//	    Return {"result": "3"}.
//
//	GET /healthz
//	    Liveness probe.
//
// Behaviour
//
//   - The server keeps no calculator state of its own; each websocket
//     connection has its own calculator.
//   - Responses are JSON. Non-2xx statuses carry {"error": "..."}.
//   - Every request is logged with method, path, status and duration.
//   - The default listen address is :8080, or $CALCPAD_ADDR.
package main
