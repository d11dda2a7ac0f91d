// Package tspfile reads and writes point sets in the NODE_COORD_SECTION
// layout of TSPLIB files.
//
// Format:
//
//	NAME : example          <- any header lines, skipped
//	TYPE : TSP
//	NODE_COORD_SECTION      <- required marker
//	1 0.5 3.25              <- "<id> <x> <y>", whitespace separated
//	2 1e3 -7
//	EOF                     <- optional terminator
//
// Reading:
//   - every line before the marker is ignored;
//   - blank lines are ignored, "EOF" ends the section;
//   - ids are not interpreted (files in the wild repeat them);
//   - a record with fewer than three fields, an unparsable number or a
//     non-finite coordinate fails with ErrMalformedLine naming the line;
//   - lines are capped at MaxLineBytes (1 MiB); a longer line, header or
//     record, fails with ErrMalformedLine naming the line.
//
// Writing emits the marker, one record per point with ids 1..n and the
// shortest round-trip float formatting, then "EOF". Read(Write(p)) == p.
package tspfile
