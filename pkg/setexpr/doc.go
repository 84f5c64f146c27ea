// Package setexpr provides a lexer, parser, evaluator and equivalence
// oracle for set-algebra expressions over a small finite universe.
//
// Pipeline: source text → Lex → Parse → Evaluate → RegionSet
//
// An expression combines declared named sets with union (∪), intersection
// (∩), postfix complement (') and the constants ∅ and 𝕌. Because a universe
// of k sets has only 2^k regions, every expression is evaluated to an exact
// bitmask and equivalence is decided by comparing bitmasks.
package setexpr
