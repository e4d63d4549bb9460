package engine

import (
	"errors"
	"testing"

	"pixelquest/internal/storage"
)

func card(id int64, name string, rarity Rarity, star, hp, atk int) storage.Card {
	return storage.Card{ID: id, Name: name, Rarity: string(rarity), Seed: "s", HP: hp, ATK: atk, StarLevel: star}
}

func TestFindMergeableGroups(t *testing.T) {
	inv := []storage.Card{
		card(7, "Slime", RarityCommon, 1, 4, 4),
		card(6, "Slime", RarityCommon, 1, 5, 5),
		card(5, "Slime", RarityCommon, 1, 6, 6),
		card(4, "Slime", RarityCommon, 2, 8, 8), // different star, own group
		card(3, "Rat", RarityCommon, 1, 2, 2),   // only one
		card(2, "Knight", RarityRare, 1, 9, 9),
		card(1, "Knight", RarityRare, 1, 9, 9),
	}

	groups := FindMergeableGroups(inv)
	if len(groups) != 1 {
		t.Fatalf("groups=%d, want 1", len(groups))
	}
	g := groups[0]
	want := GroupKey{Name: "Slime", Rarity: RarityCommon, StarLevel: 1}
	if g.Key != want {
		t.Fatalf("key=%v, want %v", g.Key, want)
	}
	if len(g.Cards) != 3 || g.MergesAvailable != 1 {
		t.Fatalf("cards=%d merges=%d, want 3/1", len(g.Cards), g.MergesAvailable)
	}
}

func TestFindMergeableGroupsFloorDivision(t *testing.T) {
	var inv []storage.Card
	for i := int64(1); i <= 7; i++ {
		inv = append(inv, card(i, "Bat", RarityCommon, 1, 3, 3))
	}
	groups := FindMergeableGroups(inv)
	if len(groups) != 1 {
		t.Fatalf("groups=%d, want 1", len(groups))
	}
	if groups[0].MergesAvailable != 2 {
		t.Fatalf("merges=%d, want floor(7/3)=2", groups[0].MergesAvailable)
	}
}

func TestStarCapExcludedFromGroups(t *testing.T) {
	inv := []storage.Card{
		card(1, "Dragon", RarityLegendary, MaxStarLevel, 50, 50),
		card(2, "Dragon", RarityLegendary, MaxStarLevel, 50, 50),
		card(3, "Dragon", RarityLegendary, MaxStarLevel, 50, 50),
	}
	if groups := FindMergeableGroups(inv); len(groups) != 0 {
		t.Fatalf("5-star cards grouped: %v", groups)
	}
}

func TestMergeConservation(t *testing.T) {
	group := []storage.Card{
		card(10, "Elf", RarityRare, 2, 11, 9),
		card(11, "Elf", RarityRare, 2, 12, 8),
		card(12, "Elf", RarityRare, 2, 10, 7),
	}
	out, err := Merge(group)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if len(out.ConsumedIDs) != 3 {
		t.Fatalf("consumed %d cards, want 3", len(out.ConsumedIDs))
	}
	for i, want := range []int64{10, 11, 12} {
		if out.ConsumedIDs[i] != want {
			t.Fatalf("consumed[%d]=%d, want %d", i, out.ConsumedIDs[i], want)
		}
	}
	c := out.NewCard
	if c.StarLevel != 3 {
		t.Fatalf("star=%d, want base+1=3", c.StarLevel)
	}
	if c.Name != "Elf" || c.Rarity != string(RarityRare) || c.Seed != "s" {
		t.Fatalf("new card should inherit base identity, got %+v", c)
	}
}

func TestMergeStatScaling(t *testing.T) {
	group := []storage.Card{
		card(1, "Knight", RarityRare, 1, 10, 10),
		card(2, "Knight", RarityRare, 1, 12, 12),
		card(3, "Knight", RarityRare, 1, 11, 11),
	}
	out, err := Merge(group)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if out.NewCard.HP != 12 || out.NewCard.ATK != 12 {
		t.Fatalf("stats hp=%d atk=%d, want ceil(10*1.2)=12 from the base only", out.NewCard.HP, out.NewCard.ATK)
	}
}

func TestMergeScenarioSlime(t *testing.T) {
	group := []storage.Card{
		card(1, "Slime", RarityCommon, 1, 4, 4),
		card(2, "Slime", RarityCommon, 1, 5, 5),
		card(3, "Slime", RarityCommon, 1, 6, 6),
	}
	out, err := Merge(group)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if out.NewCard.HP != 5 {
		t.Fatalf("hp=%d, want ceil(4*1.2)=5", out.NewCard.HP)
	}
	if out.NewCard.StarLevel != 2 {
		t.Fatalf("star=%d, want 2", out.NewCard.StarLevel)
	}
	// Inventory shrinks 3 -> 1.
	remaining := len(group) - len(out.ConsumedIDs) + 1
	if remaining != 1 {
		t.Fatalf("remaining=%d, want 1", remaining)
	}
}

func TestMergeContractViolations(t *testing.T) {
	var invalid InvalidMergeGroupError

	_, err := Merge([]storage.Card{
		card(1, "Slime", RarityCommon, 1, 4, 4),
		card(2, "Slime", RarityCommon, 1, 5, 5),
	})
	if !errors.As(err, &invalid) {
		t.Fatalf("short group err=%v, want InvalidMergeGroupError", err)
	}

	_, err = Merge([]storage.Card{
		card(1, "Slime", RarityCommon, 1, 4, 4),
		card(2, "Rat", RarityCommon, 1, 5, 5),
		card(3, "Slime", RarityCommon, 1, 6, 6),
	})
	if !errors.As(err, &invalid) {
		t.Fatalf("mixed keys err=%v, want InvalidMergeGroupError", err)
	}

	_, err = Merge([]storage.Card{
		card(1, "Dragon", RarityLegendary, MaxStarLevel, 50, 50),
		card(2, "Dragon", RarityLegendary, MaxStarLevel, 50, 50),
		card(3, "Dragon", RarityLegendary, MaxStarLevel, 50, 50),
	})
	if !errors.As(err, &invalid) {
		t.Fatalf("capped star err=%v, want InvalidMergeGroupError", err)
	}
}
