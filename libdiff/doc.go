// Package libdiff compares rendered menus.
//
// [Lines] gives a line diff of two outlines. [MergePatch] gives the JSON
// merge patch (RFC 7386) taking one flat export (outline number to label)
// to another.
package libdiff
