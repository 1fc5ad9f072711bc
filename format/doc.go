// Package format names the output formats a menu tree can be encoded in.
//
//   - outline: numbered, indented text, one line per tree position
//   - yaml, json: the outline as nested items
//   - flat: a JSON object from outline number to label
//   - menu: canonical menu source, re-readable by package parse
package format
