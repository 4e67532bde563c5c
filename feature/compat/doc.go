// Package compat decides which mediums may be treated as hydraulically
// connected and partitions all network elements into disjoint compatibility
// groups before analysis.
//
// Three interchangeable strategies exist behind one interface: prefix
// matching on medium names, an explicit adjacency table, and wildcard
// patterns resolved into named buckets. None of them fails on an
// unrecognized medium; it simply forms its own singleton group.
package compat
