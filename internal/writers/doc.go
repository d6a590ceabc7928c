// Package writers turns design and analysis results into serialized output.
//
// Design:
//   • Writers own all presentation knowledge (TSV, JSON/JSONL, FASTA).
//   • core/design stays domain-only; pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
//   • Every writer runs in its own goroutine fed by a channel and reports a
//     single error when the channel is closed.
package writers
