// Package io reads and writes run reports.
//
// A report records one solve: the alphabet size, the final distance and
// superpermutation length, and every milestone along the way with the
// frontier and closed-set sizes at that point. Each report carries a random
// run identifier so that exported files and cache entries can be told apart.
//
// Reports are written as indented JSON or as TOML. [Export] and [Import]
// pick the encoding from the file extension.
package io
