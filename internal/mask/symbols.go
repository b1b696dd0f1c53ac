package mask

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Symbols is the locale symbol table bound to a mask at compile time.
// Separator columns render and accept the locale's characters; the sign
// is always stored as the canonical '-'.
type Symbols struct {
	Decimal  rune
	Group    rune
	Negative rune
}

// DefaultSymbols returns the canonical symbol set.
func DefaultSymbols() Symbols {
	return Symbols{Decimal: '.', Group: ',', Negative: '-'}
}

// SymbolsFor derives the symbol table for a locale by formatting a probe
// number through the locale's printer and reading the separators back.
// Locales whose digit system defeats the probe fall back to the default.
func SymbolsFor(tag language.Tag) Symbols {
	sym := DefaultSymbols()
	p := message.NewPrinter(tag)

	probe := p.Sprintf("%v", number.Decimal(1234567.89))
	var seps []rune
	digits := 0
	for _, r := range probe {
		if r >= '0' && r <= '9' {
			digits++
			continue
		}
		seps = append(seps, r)
	}
	if digits != 9 || len(seps) == 0 {
		return sym
	}
	// The last separator precedes the fraction; any earlier one groups.
	sym.Decimal = seps[len(seps)-1]
	if len(seps) > 1 {
		sym.Group = seps[0]
	}

	neg := p.Sprintf("%v", number.Decimal(-1))
	for _, r := range neg {
		if r < '0' || r > '9' {
			sym.Negative = r
			break
		}
	}
	return sym
}
