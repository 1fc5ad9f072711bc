// Package encode renders menu trees.
//
// # Usage
//
//	tree, err := parse.Parse(r, "menu.txt")
//	// numbered, indented outline
//	err = encode.Encode(tree, os.Stdout)
//
//	// only the first two levels, as YAML
//	err = encode.Encode(tree, os.Stdout,
//		encode.EncodeFormat(format.YAMLFormat),
//		encode.MaxDepth(2))
//
// The outline gives each tree position its dotted sibling number: top level
// items are numbered 1, 2, ..., and the children of item 1.2 are numbered
// 1.2.1, 1.2.2, .... Siblings appear in the order they were attached.
//
// # Related Packages
//
//   - github.com/signadot/menutree/parse - build a tree from menu source
//   - github.com/signadot/menutree/filter - expressions for [EncodeFilter]
package encode
