// Package writers turns sequence records into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (JSON/JSONL/BSON/TSV).
//   • core/ stays domain-only; apps only hand records to a writer channel.
//   • JSON/JSONL/BSON go through pkg/api (v1) for a stable wire format.
package writers
