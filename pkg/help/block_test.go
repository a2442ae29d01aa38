package help

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenderlove/yazap/pkg/errors"
)

func TestAppendPadding(t *testing.T) {
	tests := []struct {
		name        string
		capacity    int
		preFill     string
		n           int
		wantVisible string
	}{
		{
			name:        "padding within capacity",
			capacity:    10,
			n:           4,
			wantVisible: "    ",
		},
		{
			name:        "padding saturates at capacity",
			capacity:    10,
			n:           15,
			wantVisible: strings.Repeat(" ", 10),
		},
		{
			name:        "padding after content saturates",
			capacity:    10,
			preFill:     "abcdefgh",
			n:           5,
			wantVisible: "abcdefgh  ",
		},
		{
			name:        "zero padding",
			capacity:    10,
			n:           0,
			wantVisible: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBlock(tt.capacity, false)
			if tt.preFill != "" {
				require.NoError(t, b.append(tt.preFill))
			}
			b.appendPadding(tt.n)
			assert.Equal(t, tt.wantVisible, string(b.visible))
			_, overflowed := b.overflowText()
			assert.False(t, overflowed, "padding must never overflow")
		})
	}
}

func TestAppendWithinCapacity(t *testing.T) {
	b := newBlock(10, false)
	require.NoError(t, b.append("hello"))

	assert.Equal(t, "hello", string(b.visible))
	_, overflowed := b.overflowText()
	assert.False(t, overflowed)
}

func TestAppendSplitsAtCapacity(t *testing.T) {
	b := newBlock(10, false)
	require.NoError(t, b.append("0123456789abcde"))

	assert.Equal(t, "0123456789", string(b.visible))
	overflow, overflowed := b.overflowText()
	require.True(t, overflowed)
	assert.Equal(t, "abcde", overflow, "overflow length must equal input minus remaining capacity")
}

func TestAppendAccumulatesAcrossWrites(t *testing.T) {
	b := newBlock(10, false)
	require.NoError(t, b.append("abcdef"))
	require.NoError(t, b.append("ghijklmn"))

	assert.Equal(t, "abcdefghij", string(b.visible))
	overflow, overflowed := b.overflowText()
	require.True(t, overflowed)
	assert.Equal(t, "klmn", overflow)
}

func TestAppendExactFit(t *testing.T) {
	b := newBlock(5, false)
	require.NoError(t, b.append("12345"))

	assert.Equal(t, "12345", string(b.visible))
	_, overflowed := b.overflowText()
	assert.False(t, overflowed, "exact fit must not create overflow")
}

func TestAppendCapacityViolation(t *testing.T) {
	b := newBlock(10, false)
	err := b.append(strings.Repeat("x", 25))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBlockCapacity))
	assert.Empty(t, b.visible, "a rejected write must not mutate the block")
}

func TestAppendCapacityViolationWhenOverflowFull(t *testing.T) {
	b := newBlock(10, false)
	require.NoError(t, b.append(strings.Repeat("x", 20)))

	err := b.append("y")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBlockCapacity))
}

func TestWriteToFillPadsToCapacity(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "partial", content: "abc"},
		{name: "full", content: "0123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBlock(10, true)
			require.NoError(t, b.append(tt.content))

			var buf bytes.Buffer
			b.writeTo(&buf)
			assert.Len(t, buf.String(), 10, "filled blocks always format to exactly the capacity")
			assert.True(t, strings.HasPrefix(buf.String(), tt.content))
		})
	}
}

func TestWriteToRaggedKeepsContentLength(t *testing.T) {
	b := newBlock(10, false)
	require.NoError(t, b.append("abc"))

	var buf bytes.Buffer
	b.writeTo(&buf)
	assert.Equal(t, "abc", buf.String())
}

func TestOverflowTextEmpty(t *testing.T) {
	b := newBlock(10, false)
	text, ok := b.overflowText()

	assert.False(t, ok)
	assert.Empty(t, text)
}
