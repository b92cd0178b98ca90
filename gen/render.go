package gen

import (
	"bufio"
	"fmt"
	"io"
)

// Render writes the grouped structure as nested conditional text. The
// nesting and grouping are the contract; the keyword dressing here is one
// rendering a backend may replace.
func Render(w io.Writer, blocks []CycleBlock) (err error) {
	bw := bufio.NewWriter(w)
	for _, cb := range blocks {
		fmt.Fprintf(bw, "if (reg_cycle == %d) begin\n", cb.Cycle)
		for _, mb := range cb.Modes {
			fmt.Fprintf(bw, "    if (reg_address_mode_%v) begin\n", mb.Mode)
			for _, g := range mb.Guards {
				renderGuard(bw, g)
			}
			fmt.Fprintf(bw, "    end // %v\n", mb.Mode)
		}
		fmt.Fprintf(bw, "end // cycle %d\n", cb.Cycle)
	}
	err = bw.Flush()
	return
}

func renderGuard(w io.Writer, g Guard) {
	fmt.Fprintf(w, "        if (\n")
	for n, term := range g.Terms {
		lead := "            "
		if n > 0 {
			lead += "|| "
		}
		origin := term.Origins[0]
		fmt.Fprintf(w, "%sreg_operation_%v // %v [%02X]\n",
			lead, term.Op, origin.Variant, origin.Opcode)
		for _, also := range term.Origins[1:] {
			fmt.Fprintf(w, "                                // also: %v %v [%02X]\n",
				term.Op, also.Variant, also.Opcode)
		}
	}
	fmt.Fprintf(w, "        ) begin\n")
	fmt.Fprintf(w, "            %s\n", g.Action)
	fmt.Fprintf(w, "        end\n")
}
