package help

import (
	"bytes"
	"strings"

	"github.com/tenderlove/yazap/pkg/errors"
)

// block is a fixed-capacity text cell. Appended text fills a visible buffer
// up to the capacity; the excess of a write lands in a single overflow buffer
// of the same capacity, drained later into a continuation row. Text that fits
// neither buffer is a capacity violation, never a silent truncation.
type block struct {
	capacity int
	fill     bool
	visible  []byte
	overflow []byte
}

func newBlock(capacity int, fill bool) *block {
	return &block{capacity: capacity, fill: fill}
}

// appendPadding appends up to n spaces to the visible buffer, saturating at
// the remaining capacity.
func (b *block) appendPadding(n int) {
	if remaining := b.capacity - len(b.visible); n > remaining {
		n = remaining
	}
	if n <= 0 {
		return
	}
	b.visible = append(b.visible, strings.Repeat(" ", n)...)
}

// append adds text to the visible buffer up to the remaining capacity and
// routes the excess to the overflow buffer.
func (b *block) append(text string) error {
	room := b.capacity - len(b.visible)
	if len(text) <= room {
		b.visible = append(b.visible, text...)
		return nil
	}

	excess := text[room:]
	if len(excess) > b.capacity-len(b.overflow) {
		return errors.New(errors.ErrBlockCapacity, "text exceeds block capacity").
			WithDetail("capacity", b.capacity).
			WithDetail("length", len(text))
	}
	b.visible = append(b.visible, text[:room]...)
	b.overflow = append(b.overflow, excess...)
	return nil
}

// writeTo emits the visible buffer, padded to the full capacity when the
// block fills.
func (b *block) writeTo(buf *bytes.Buffer) {
	buf.Write(b.visible)
	if b.fill {
		for i := len(b.visible); i < b.capacity; i++ {
			buf.WriteByte(' ')
		}
	}
}

// overflowText returns the overflow buffer and whether it is non-empty.
func (b *block) overflowText() (string, bool) {
	if len(b.overflow) == 0 {
		return "", false
	}
	return string(b.overflow), true
}
