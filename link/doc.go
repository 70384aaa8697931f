// Package link models the streaming link layer that consumes the generator's
// output: a flow-controlled relay with a single-slot elasticity buffer and a
// link-status gate.
//
// The generator has no backpressure, so the relay absorbs at most one tick
// of consumer stall:
//
//   - link down: every incoming beat is dropped and the slot is flushed;
//   - slot empty: an incoming beat passes straight through when the
//     consumer is ready, otherwise it parks in the slot;
//   - slot full: the parked beat is offered first; if the consumer is not
//     ready and a new beat arrives, the new beat is an overrun and is lost.
//
// Relay is a single-tick model like generator.Generator: call Tick once per
// cycle.
package link
