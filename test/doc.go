// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectSuccess() functions report a failure with
// t.Errorf() and allow the test to continue. The Demand*() equivalents use
// t.Fatalf() and stop the test immediately.
//
// The functions accept an optional list of tags which are prepended to the
// failure message. This is useful when the test is part of a loop.
package test
