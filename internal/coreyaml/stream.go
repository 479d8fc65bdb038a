// Copyright 2026 The yamlcore Contributors
// SPDX-License-Identifier: Apache-2.0

package coreyaml

// Stream composition, per YAML 1.2 rule [211]
// l-yaml-stream. A document not preceded by "..." must be explicit or
// directive-led; one that follows "..." may be any of the three forms.

// parseStream parses the whole source into a Stream. Per the
// "abort-whole-stream on any error" rule, the first Error encountered
// aborts the parse; the Stream returned with that Error holds only the
// documents completed before the failing one, which Parse uses to
// report the failing document's index and then discards.
//
// A document not immediately preceded by a "..." marker must be
// explicit or directive-led; precededByEnd tracks that
// condition across iterations. It starts true because the very
// beginning of the stream is itself a valid place for a bare document,
// same as right after "...". Each parseDocument call may itself
// consume the "..." that ends its own document (see doc.HasExplicitEnd
// below), so that state — not a second scan of the source — is what
// this loop consults; re-scanning cur for "..." here would never see a
// marker parseDocument already stepped past.
func parseStream(c Cursor, opt *options) (Stream, Result) {
	var stream Stream
	cur := lDocumentPrefix(c).Next
	precededByEnd := true

	for !cur.eof() {
		doc, next, r := parseDocument(cur, !precededByEnd, opt)
		if r.Outcome == Error {
			return stream, r
		}
		if !r.ok() {
			break
		}
		stream.Documents = append(stream.Documents, doc)
		cur = next
		precededByEnd = doc.HasExplicitEnd

		for {
			suffix := lDocumentSuffix(cur)
			if !suffix.ok() {
				break
			}
			cur = suffix.Next
			precededByEnd = true
		}
		cur = lDocumentPrefix(cur).Next
	}

	if !cur.eof() {
		return stream, errAt(cur, "unexpected content at end of stream")
	}
	return stream, ok(cur)
}
