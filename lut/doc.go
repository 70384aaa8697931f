// Package lut holds the two read-only lookup tables the pulse pipeline
// evaluates its transcendental functions from.
//
//   - Exp: 1024 entries of exp(-x), x = addr/64 over [0, 16). The address is
//     a UQ4.6 value; entries are UQ0.15 with 1.0 stored as 0x7FFF.
//   - Cos: 2048 entries of cos(2π·addr/2048), one full turn. Entries are
//     SQ1.15 with +1.0 stored as 0x7FFF.
//
// The table data lives in tables_gen.go, produced by cmd/lutgen. Tables are
// never written at runtime, so any number of evaluators may read them
// concurrently without coordination.
package lut
