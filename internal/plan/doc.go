// Package plan compiles ordered command sequences with symbolic
// bindings into flat execution plans.
//
// A step may bind its result to a plan-local name; later steps
// reference that name, either as a command ObjectID or as an
// arithmetic operand. Compile resolves every name against bindings
// made by strictly earlier steps and lowers the sequence into a linear
// instruction list addressed by result slots. Compilation is
// all-or-nothing: one bad step fails the whole compile and no partial
// plan escapes.
//
// Compile keeps its binding table local to the call, so independent
// compiles are safe to run concurrently.
package plan
