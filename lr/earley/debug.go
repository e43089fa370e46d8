package earley

import (
	"bytes"

	"github.com/rfielding/gramma/lr/iteratable"
)

// dumpState traces the contents of sets[stateno] at debug level, one item
// per line.
func dumpState[L comparable](sets Sets[L], stateno int) {
	if stateno >= len(sets) {
		return
	}
	tracer().Debugf("--- State %04d ------------------------------------", stateno)
	S := sets[stateno]
	for n := 0; n < S.Len(); n++ {
		tracer().Debugf("[%2d] %s", n+1, S.At(n))
	}
}

// itemSetString renders an item set as a brace-delimited list, for use in
// trace messages and test failure output.
func itemSetString[L comparable](S *iteratable.Set[*Item[L], itemKey]) string {
	var b bytes.Buffer
	b.WriteString("{")
	for n := 0; n < S.Len(); n++ {
		if n == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(S.At(n).String())
	}
	b.WriteString(" }")
	return b.String()
}
