// Package ispd reads and writes the ISPD clock-network benchmark's
// line-based, whitespace-tokenized file format: floorplan, source, sinks,
// wire and buffer libraries, simulation parameters, and (a format
// extension recovered from the original parser's unused READ_BLOCKAGE
// state) trailing obstacle rectangles.
package ispd
