// Package ir holds the in-memory form of a menu: a [Registry] of declared
// records and a [Tree] of [Node] positions referring to them.
//
// A record is stored once, in the registry. Tree nodes refer to records by
// registry index, so the same record may appear at several positions in the
// tree (under several parents) without being copied. [Tree.Release] tears
// the structure down; the registry is the only owner of record storage.
package ir
