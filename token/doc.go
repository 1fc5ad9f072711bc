// Package token provides the byte level reader for menu source.
//
// [Reader] reads the two kinds of field found in menu records: fixed width
// decimal ids ([Reader.ReadFixedDigits]) and free text labels running to the
// end of the line ([Reader.ReadLabel]). It never looks ahead more than one
// byte and tracks the [Pos] of the next byte to be read.
package token
