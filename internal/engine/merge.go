package engine

import (
	"math"

	"pixelquest/internal/storage"
)

// MergeSize is how many identical cards one merge consumes.
const MergeSize = 3

// MergeGrowth scales the base card's stats on upgrade.
const MergeGrowth = 1.2

// GroupKey identifies a merge group: cards merge only with exact copies at
// the same star level.
type GroupKey struct {
	Name      string
	Rarity    Rarity
	StarLevel int
}

type MergeableGroup struct {
	Key             GroupKey
	Cards           []storage.Card
	MergesAvailable int
}

// FindMergeableGroups partitions the inventory by (name, rarity, star level),
// excluding cards already at the star cap, and returns the groups holding at
// least MergeSize cards. Group order and card order within a group follow the
// inventory order as supplied (newest first), so "the first 3" of a group is
// deterministic for a given inventory.
func FindMergeableGroups(inventory []storage.Card) []MergeableGroup {
	byKey := map[GroupKey][]storage.Card{}
	var keyOrder []GroupKey

	for _, c := range inventory {
		if c.StarLevel >= MaxStarLevel {
			continue
		}
		k := GroupKey{Name: c.Name, Rarity: Rarity(c.Rarity), StarLevel: c.StarLevel}
		if _, seen := byKey[k]; !seen {
			keyOrder = append(keyOrder, k)
		}
		byKey[k] = append(byKey[k], c)
	}

	var out []MergeableGroup
	for _, k := range keyOrder {
		cards := byKey[k]
		if len(cards) < MergeSize {
			continue
		}
		out = append(out, MergeableGroup{
			Key:             k,
			Cards:           cards,
			MergesAvailable: len(cards) / MergeSize,
		})
	}
	return out
}

type MergeOutcome struct {
	NewCard     storage.Card // ID unset until persisted
	ConsumedIDs []int64
}

// Merge consumes the first MergeSize cards of the group and mints the
// upgraded card. The first consumed card is the base: the new card inherits
// its name, rarity and cosmetic seed, gains one star, and its stats scale to
// ceil(base * MergeGrowth). The other consumed cards' stats are discarded.
func Merge(group []storage.Card) (*MergeOutcome, error) {
	if len(group) < MergeSize {
		return nil, InvalidMergeGroupError{Reason: "fewer than 3 cards"}
	}
	base := group[0]
	if base.StarLevel >= MaxStarLevel {
		return nil, InvalidMergeGroupError{Reason: "card already at max star level"}
	}
	key := GroupKey{Name: base.Name, Rarity: Rarity(base.Rarity), StarLevel: base.StarLevel}
	consumed := make([]int64, 0, MergeSize)
	for _, c := range group[:MergeSize] {
		k := GroupKey{Name: c.Name, Rarity: Rarity(c.Rarity), StarLevel: c.StarLevel}
		if k != key {
			return nil, InvalidMergeGroupError{Reason: "mixed card keys"}
		}
		consumed = append(consumed, c.ID)
	}

	return &MergeOutcome{
		NewCard: storage.Card{
			Name:      base.Name,
			Rarity:    base.Rarity,
			Seed:      base.Seed,
			HP:        scaleStat(base.HP),
			ATK:       scaleStat(base.ATK),
			StarLevel: base.StarLevel + 1,
		},
		ConsumedIDs: consumed,
	}, nil
}

func scaleStat(v int) int {
	return int(math.Ceil(float64(v) * MergeGrowth))
}
