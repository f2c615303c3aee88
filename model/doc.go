// Package model defines the core value types shared by every closestpair
// package.
//
// # Point
//
// A Point is an (X, Y) pair of signed 32-bit coordinates. It is a plain
// comparable value: two points are equal when both coordinates are equal.
//
// Two total orders are provided:
//
//   - LessXY: lexicographic by X, ties broken by Y
//   - LessY:  by Y alone
//
// For use with the slices package, CompareXY and CompareY return the
// three-way equivalents:
//
//	slices.SortFunc(pts, model.CompareXY)
package model
