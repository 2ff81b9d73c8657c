// Package synthdoc turns registry records into the markdown token reference.
//
// Describer produces the prose description of a synth, Threshold derives the
// underlying price at which an inverse synth freezes, and Assembler renders one
// section per token in display-name order.
package synthdoc
