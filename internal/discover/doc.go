// Package discover finds the documents to scan.
//
// Walk enumerates every file under a root directory and FilterMarkdown keeps
// the markdown documents in a deterministic order.
package discover
