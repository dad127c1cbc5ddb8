package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a constructor-local index to a valve identifier.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index ("0", "1", …).
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PairIDFn returns doubled letters "AA", "BB", … "ZZ", then "AA1", "BB1", …
// so the start valve of a generated layout is "AA" like real inputs.
func PairIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("PairIDFn: idx must be ≥ 0, got %d", idx))
	}
	r := string(rune('A' + idx%26))
	if round := idx / 26; round > 0 {
		return r + r + strconv.Itoa(round)
	}

	return r + r
}

// ExcelColumnIDFn returns "A", "B", …, "Z", "AA", "AB", ….
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn returns prefix followed by the decimal index.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// WithPairIDs selects PairIDFn.
func WithPairIDs() BuilderOption { return WithIDScheme(PairIDFn) }

// WithExcelColumnIDs selects ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithSymbNumb selects SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }
