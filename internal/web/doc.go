// Package web serves the calculator to a browser.
//
// GET / returns a single page that draws the keypad and forwards every
// button click and key press over a websocket (GET /ws). Each websocket
// connection owns one calculator state; messages are handled in arrival
// order and each is answered with the display to render.
//
// The JSON API is stateless and used by package remote:
//
//	POST /api/press     {"state": {...}, "script": "12+3="} -> {"state": {...}}
//	POST /api/evaluate  {"a": "1", "b": "2", "op": "+"}      -> {"result": "3"}
//	GET  /healthz       -> ok
package web
