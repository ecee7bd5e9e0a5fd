// Package tui is a terminal front end for the calculator built on tcell.
//
// It draws the display above the keypad from input.Layout and maps key and
// mouse events onto calculator events. Keys follow the browser mapping
// (digits, + - * /, Enter, Escape) with a few terminal shortcuts: '.' types a
// decimal point, '=' evaluates, 'c' clears, and 'q' or Ctrl-C quits.
package tui
