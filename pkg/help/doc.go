// Package help renders the help text of a command tree as a byte-exact,
// column-aligned block suitable for a terminal.
//
// Every entry row pairs two fixed-capacity blocks: a signature column that is
// space-filled to a constant width, so descriptions start at the same screen
// column on every row, and a ragged description column. Text that exceeds a
// block's width overflows into a continuation row that re-applies the left
// indent, keeping the two-column layout intact across wrapped rows. A single
// write longer than one visible plus one overflow level is rejected with a
// BLOCK_CAPACITY error rather than truncated.
//
// The renderer walks an immutable command.Command snapshot section by
// section (description, usage, positional args, subcommands, options,
// footer), assembles the whole text in memory, and flushes it to the
// configured sink in one write. Output carries no ANSI styling and the
// column widths are fixed, not derived from the terminal.
package help
