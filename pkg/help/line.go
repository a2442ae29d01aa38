package help

import "bytes"

// line is one help row: a space-filled signature column that descriptions
// align behind, and a ragged description column. Overflow in either block is
// drained into continuation rows that keep the same column geometry.
type line struct {
	signature   *block
	description *block
	indent      int
}

// newLine creates a row with a signature column of sigWidth bytes. indent is
// the left padding re-applied to the signature side of every continuation.
func newLine(sigWidth, indent int) *line {
	return &line{
		signature:   newBlock(sigWidth, true),
		description: newBlock(descriptionWidth, false),
		indent:      indent,
	}
}

// format writes the row followed by a newline, then recursively formats one
// continuation row per remaining overflow level until both blocks drain.
func (l *line) format(buf *bytes.Buffer) error {
	l.signature.writeTo(buf)
	l.description.writeTo(buf)
	buf.WriteByte('\n')

	sigOverflow, sigRemains := l.signature.overflowText()
	descOverflow, descRemains := l.description.overflowText()
	if !sigRemains && !descRemains {
		return nil
	}

	cont := newLine(l.signature.capacity, l.indent)
	cont.signature.appendPadding(l.indent)
	if sigRemains {
		if err := cont.signature.append(sigOverflow); err != nil {
			return err
		}
	}
	if descRemains {
		if err := cont.description.append(descOverflow); err != nil {
			return err
		}
	}
	return cont.format(buf)
}
