// Package snappyc declares the raw snappy C ABI surface.
//
// It is a leaf package: declarations and slice-to-pointer plumbing only, no
// policy. Raw snappy_status values do not leave the module; the public
// wrappers in the root package translate them before returning.
package snappyc
