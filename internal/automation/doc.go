// Package automation replays scripted widget interactions from YAML.
//
// A scenario is a list of steps such as tick, pause, play, reset, rows,
// cols and speed. Scenarios run on a simulated clock, so they finish
// instantly and are deterministic:
//
//	name: bounce
//	steps:
//	  - action: cols
//	    value: 8
//	  - action: tick
//	    count: 12
package automation
