// Package gomud reads and writes MUD (Muon Data) files, the
// self-describing hierarchical binary container format used to store
// muon-spin-rotation experimental data.
//
// A MUD file is a Fixed header followed by a chain of sections, some
// of which (Group sections) nest further sections as members. mudio
// implements the wire codec (big-endian integers, length-prefixed
// strings, VAX F/D floating point), mudsec defines the closed set of
// section variants, tree builds and walks in-memory section trees,
// mudfile drives whole-file and streaming reads/writes plus on-disk
// navigation, histpack packs and unpacks histogram bin data, and
// indvar computes the sample statistics a GenIndVar section stores.
package gomud
