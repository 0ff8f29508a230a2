// Package collection provides set-like and structural operations over slices.
//
// Key functions:
//   - Unique, Intersection, Difference, Union: set algebra preserving input order
//   - GroupBy, Chunk, Shuffle, SortBy: structural transformations
//   - Sum, Average, Max, Min: numeric reductions
//   - ArrayToTree, TreeToArray: conversion between flat records and nested trees
//   - BuildTree, FlattenTree: the same conversion for typed values
//
// No function modifies its arguments; results are always freshly allocated.
package collection
