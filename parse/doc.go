// Package parse builds a menu tree from menu source.
//
// Menu source is a sequence of records. A data record declares a node:
//
//	A0001Drinks
//
// is the 'A' tag, a 4 digit id and a label running to the end of the line.
// An edge record attaches a declared node under a parent:
//
//	B0002 0001
//
// is the 'B' tag, the child id then the parent id. Ids follow their tag
// directly; only the parent id may be preceded by spaces or tabs. Parent id
// 0000 is the
// virtual root. All data records precede all edge records. An edge whose
// parent is not in the tree yet waits until the parent is attached; edges
// still waiting at the end of input are an error, and with [Strict] they
// are an error as soon as they are read. When a parent id is present at
// several places in the tree, the child is attached at each.
//
// [Parse] fails fast: the first violation is returned as an [*Error] and
// any partial tree is released. Stray bytes outside of records are reported
// as [*Warning] and skipped.
package parse
