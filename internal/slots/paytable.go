package slots

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/osse101/LuckySpin_Go/internal/domain"
	"github.com/osse101/LuckySpin_Go/internal/utils"
)

// Layouts
const (
	LayoutGrid = "grid" // 3x3, 8 paylines
	LayoutRow  = "row"  // single row, 1 payline
)

// StandardPaylines are the 8 lines of a 3x3 grid: rows, columns, diagonals
var StandardPaylines = []domain.Payline{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// RowPaylines is the single line of a one-row reel
var RowPaylines = []domain.Payline{{0, 1, 2}}

// Paytable is the immutable configuration of one symbol variant
type Paytable struct {
	Name     string
	Cells    int
	Paylines []domain.Payline
	Weights  *WeightTable
	Payouts  map[domain.Symbol]int
	Wild     domain.Symbol // empty disables substitution
	Special  map[domain.Symbol]bool
	Tiers    map[domain.Symbol]domain.SymbolTier
}

// PayoutFor returns the symbol's payout factor, DefaultSymbolPayout when unlisted
func (p *Paytable) PayoutFor(sym domain.Symbol) int {
	if v, ok := p.Payouts[sym]; ok {
		return v
	}
	return DefaultSymbolPayout
}

// IsWild reports whether sym substitutes for other symbols
func (p *Paytable) IsWild(sym domain.Symbol) bool {
	return p.Wild != "" && sym == p.Wild
}

// IsSpecial reports whether a win on sym is always a jackpot
func (p *Paytable) IsSpecial(sym domain.Symbol) bool {
	return p.Special[sym]
}

// TierSpec is one rarity tier in a paytable file
type TierSpec struct {
	Tier    string   `yaml:"tier"`
	Weight  int      `yaml:"weight"`
	Symbols []string `yaml:"symbols"`
}

// VariantSpec is the file representation of a paytable
type VariantSpec struct {
	Layout  string         `yaml:"layout"`
	Wild    string         `yaml:"wild"`
	Special []string       `yaml:"special"`
	Tiers   []TierSpec     `yaml:"tiers"`
	Payouts map[string]int `yaml:"payouts"`
}

// PaytableFile is the root of configs/paytable.yaml
type PaytableFile struct {
	Variants map[string]VariantSpec `yaml:"variants"`
}

// BuildPaytable validates spec and folds tier weights into a per-symbol table.
// A tier's weight is split evenly across its symbols; the remainder goes to the first ones.
func BuildPaytable(name string, spec VariantSpec) (*Paytable, error) {
	pt := &Paytable{
		Name:    name,
		Payouts: make(map[domain.Symbol]int, len(spec.Payouts)),
		Wild:    domain.Symbol(spec.Wild),
		Special: make(map[domain.Symbol]bool, len(spec.Special)),
		Tiers:   make(map[domain.Symbol]domain.SymbolTier),
	}

	switch spec.Layout {
	case LayoutGrid, "":
		pt.Cells = GridCells3x3
		pt.Paylines = StandardPaylines
	case LayoutRow:
		pt.Cells = GridCellsRow
		pt.Paylines = RowPaylines
	default:
		return nil, fmt.Errorf("%w: variant %s has unknown layout %q", domain.ErrInvalidTable, name, spec.Layout)
	}

	var entries []WeightedSymbol
	for _, tier := range spec.Tiers {
		if len(tier.Symbols) == 0 {
			return nil, fmt.Errorf("%w: variant %s tier %q has no symbols", domain.ErrInvalidTable, name, tier.Tier)
		}
		if tier.Weight < 0 {
			return nil, fmt.Errorf("%w: variant %s tier %q has negative weight", domain.ErrInvalidTable, name, tier.Tier)
		}
		base := tier.Weight / len(tier.Symbols)
		rem := tier.Weight % len(tier.Symbols)
		for i, s := range tier.Symbols {
			w := base
			if i < rem {
				w++
			}
			sym := domain.Symbol(s)
			entries = append(entries, WeightedSymbol{Symbol: sym, Weight: w})
			// a symbol listed in several tiers keeps its rarest tier
			pt.Tiers[sym] = domain.SymbolTier(tier.Tier)
		}
	}

	table, err := NewWeightTable(entries)
	if err != nil {
		return nil, fmt.Errorf("variant %s: %w", name, err)
	}
	pt.Weights = table

	for s, v := range spec.Payouts {
		if v < 0 {
			return nil, fmt.Errorf("%w: variant %s has negative payout for %q", domain.ErrInvalidTable, name, s)
		}
		pt.Payouts[domain.Symbol(s)] = v
	}
	for _, s := range spec.Special {
		pt.Special[domain.Symbol(s)] = true
	}

	return pt, nil
}

// BuiltinVariants returns the compiled-in variant definitions
func BuiltinVariants() map[string]VariantSpec {
	classicTiers := []TierSpec{
		{Tier: string(domain.TierLow), Weight: ClassicWeightLow, Symbols: []string{SymbolParty, SymbolBolt, SymbolFire}},
		{Tier: string(domain.TierMedium), Weight: ClassicWeightMedium, Symbols: []string{SymbolMoney, SymbolTarget, SymbolClover}},
		{Tier: string(domain.TierHigh), Weight: ClassicWeightHigh, Symbols: []string{SymbolBoom, SymbolStar, SymbolDiamond}},
		{Tier: string(domain.TierSpecial), Weight: ClassicWeightSpecial, Symbols: []string{SymbolStar, SymbolBoom}},
	}
	classicPayouts := map[string]int{
		SymbolParty: 2, SymbolBolt: 3, SymbolFire: 3,
		SymbolMoney: 4, SymbolTarget: 5, SymbolClover: 6,
		SymbolBoom: 8, SymbolStar: 8, SymbolDiamond: 10,
	}
	classicSpecial := []string{SymbolStar, SymbolBoom}

	return map[string]VariantSpec{
		VariantClassic: {
			Layout:  LayoutGrid,
			Wild:    SymbolStar,
			Special: classicSpecial,
			Tiers:   classicTiers,
			Payouts: classicPayouts,
		},
		VariantReel3: {
			Layout:  LayoutRow,
			Wild:    SymbolStar,
			Special: classicSpecial,
			Tiers:   classicTiers,
			Payouts: classicPayouts,
		},
		VariantNumeric: {
			Layout:  LayoutGrid,
			Special: []string{"7"},
			Tiers: []TierSpec{
				{Tier: string(domain.TierLow), Weight: 780, Symbols: []string{"1", "2", "3", "4", "5", "6"}},
				{Tier: string(domain.TierHigh), Weight: 160, Symbols: []string{"8", "9"}},
				{Tier: string(domain.TierSpecial), Weight: 60, Symbols: []string{"7"}},
			},
			Payouts: map[string]int{
				"1": 2, "2": 2, "3": 3, "4": 3, "5": 4, "6": 5, "7": 20, "8": 8, "9": 10,
			},
		},
	}
}

// LoadPaytables builds the builtin variants, then overlays variants from path.
// A missing file is not an error.
func LoadPaytables(path string) (map[string]*Paytable, error) {
	specs := BuiltinVariants()

	if path != "" {
		var file PaytableFile
		err := utils.LoadYAML(path, &file)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			for name, spec := range file.Variants {
				specs[name] = spec
			}
		}
	}

	out := make(map[string]*Paytable, len(specs))
	for name, spec := range specs {
		pt, err := BuildPaytable(name, spec)
		if err != nil {
			return nil, err
		}
		out[name] = pt
	}
	return out, nil
}

// VariantNames lists variant names in sorted order
func VariantNames(tables map[string]*Paytable) []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
