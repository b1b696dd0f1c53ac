// Package widget renders masked input forms on a terminal. It maps key
// events onto field edit operations and draws field state through a
// themed tcell screen.
package widget
