package huffman

import "errors"

// ErrEmptyInput is returned when the text to be encoded has zero length.
// No frequency table, tree, code table or output is produced.
var ErrEmptyInput = errors.New("empty input: nothing to encode")
