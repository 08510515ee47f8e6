// Package node is the flat data substrate of the frontend: one contiguous
// arena of fixed 16-byte records holding both lexical tokens and parsed
// compounds, addressed by stable uint32 indices.
//
// Invariants:
//   - A record is exactly 16 bytes; four per cache line.
//   - Kind ranges partition tokens (<= 127) from compounds (> 127); every
//     classification predicate is a single range check.
//   - Index 0 is the null sentinel, never returned by an allocation and
//     all-zero forever; a zero child slot means "absent".
//   - Append is monotonic. Records are never moved, removed, or compacted;
//     only flag bits may be toggled after installation.
//   - The backing reservation is made eagerly at full capacity, so indices
//     never rebase and *Node references stay valid until Close.
//
// Producers: internal/lexer appends tokens in source order; a parser appends
// compounds whose Data slots index earlier records. Consumers read by index
// and classify with the Kind predicates.
package node
