// Package huffman builds prefix-free Huffman codes for the characters of a
// text and renders the text as a string of "0" and "1" symbols.
//
// The engine runs in four stages, each consuming the previous one's output:
//
//     CountFrequencies → BuildTree → GenerateCodes → Encode
//
// Encoder bundles the middle two stages.  Decoding and bit-packing are not
// provided.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
