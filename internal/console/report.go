package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/ariefcatur/go-supermarket-chain/internal/journal"
	"github.com/ariefcatur/go-supermarket-chain/internal/market"
)

// Report writes every chain-wide query once, without prompting.
func Report(w io.Writer, chain *market.Chain, at market.Clock, day string) {
	fmt.Fprintln(w, "Top products:", orNone(chain.Top5ProductsByVolume()))

	if top, err := chain.TopStoreByRevenue(); err != nil {
		fmt.Fprintln(w, "Top store: error:", err)
	} else {
		fmt.Fprintln(w, "Top store:", top)
	}

	fmt.Fprintf(w, "Open stores (%s, %s): %s\n", at, day, orNone(chain.OpenStoresList(at, day)))

	total, err := chain.TotalRevenue()
	if err != nil {
		fmt.Fprintln(w, "Total revenue: error:", err)
	}
	fmt.Fprintln(w, "Total revenue: $"+market.FormatAmount(total))

	for _, s := range chain.Stores() {
		fmt.Fprintf(w, "  %s: $%s (%s-%s %s)\n", s, market.FormatAmount(s.TotalRevenue()),
			s.Opens(), s.Closes(), orNone(strings.Join(s.OpenDays(), ", ")))
	}
}

// DumpEvents writes the journal as JSON lines.
func DumpEvents(w io.Writer, j *journal.Journal) {
	for _, env := range j.Events() {
		fmt.Fprintf(w, "%s\n", journal.MustMarshal(env))
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
