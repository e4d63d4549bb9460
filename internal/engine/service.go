package engine

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pixelquest/internal/storage"
)

// Service composes the repositories with the reward-economy rules. The
// repositories own persistence; the rules themselves live in the pure
// functions of this package.
type Service struct {
	db         *sql.DB
	profiles   *storage.ProfileRepo
	tasks      *storage.TaskRepo
	categories *storage.CategoryRepo
	cards      *storage.CardRepo
	rng        RandomSource
}

func NewService(db *sql.DB) *Service {
	return NewServiceWithRNG(db, DefaultRNG())
}

func NewServiceWithRNG(db *sql.DB, rng RandomSource) *Service {
	return &Service{
		db:         db,
		profiles:   storage.NewProfileRepo(db),
		tasks:      storage.NewTaskRepo(db),
		categories: storage.NewCategoryRepo(db),
		cards:      storage.NewCardRepo(db),
		rng:        rng,
	}
}

func (s *Service) ProfileRepo() *storage.ProfileRepo   { return s.profiles }
func (s *Service) TaskRepo() *storage.TaskRepo         { return s.tasks }
func (s *Service) CategoryRepo() *storage.CategoryRepo { return s.categories }
func (s *Service) CardRepo() *storage.CardRepo         { return s.cards }

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", ErrEmptyTitle
	}
	return t, nil
}

func (s *Service) getProfile(ctx context.Context) (*storage.Profile, error) {
	return s.profiles.GetOrCreateMain(ctx, Today(time.Now()))
}

// Bootstrap prepares a session: seeds default categories on first run,
// ensures the profile row exists, and applies the daily reset once for the
// given date.
func (s *Service) Bootstrap(ctx context.Context, today string) error {
	if err := s.categories.EnsureDefaults(ctx); err != nil {
		return err
	}
	if _, err := s.profiles.GetOrCreateMain(ctx, today); err != nil {
		return err
	}
	_, err := s.DailyReset(ctx, today)
	return err
}

// DailyReset clears completed daily tasks when the calendar day changed since
// the profile was last active. Returns whether a reset happened.
func (s *Service) DailyReset(ctx context.Context, today string) (bool, error) {
	p, err := s.getProfile(ctx)
	if err != nil {
		return false, err
	}
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return false, err
	}
	if !ApplyDailyReset(p, tasks, today) {
		return false, nil
	}
	if err := s.tasks.ClearDailyCompleted(ctx); err != nil {
		return false, err
	}
	if err := s.profiles.Update(ctx, p); err != nil {
		return false, err
	}
	return true, nil
}

type CreateTaskInput struct {
	Title      string
	CategoryID int64
	Difficulty Difficulty
	Period     Period
}

// CreateTask inserts a task with its point value frozen from the difficulty
// mapping at creation time.
func (s *Service) CreateTask(ctx context.Context, in CreateTaskInput) (*storage.Task, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	points, err := PointsForDifficulty(in.Difficulty)
	if err != nil {
		return nil, err
	}
	period := in.Period
	if !period.IsValid() {
		period = DefaultPeriod
	}

	cat, err := s.categories.Get(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("category %d not found", in.CategoryID)
	}

	id, err := s.tasks.Insert(ctx, storage.TaskInsert{
		CategoryID: in.CategoryID,
		Title:      title,
		Difficulty: int(in.Difficulty),
		Points:     points,
		Period:     string(period),
	})
	if err != nil {
		return nil, err
	}
	return s.tasks.Get(ctx, id)
}

type ToggleTaskResult struct {
	Task   *storage.Task
	Result ToggleResult
}

// ToggleTask flips a task's completion and applies the matching point/streak
// mutation to the profile.
func (s *Service) ToggleTask(ctx context.Context, id int64) (*ToggleTaskResult, error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("task %d not found", id)
	}
	p, err := s.getProfile(ctx)
	if err != nil {
		return nil, err
	}

	res := ApplyToggle(p, t)

	if err := s.tasks.SetCompleted(ctx, t.ID, t.Completed); err != nil {
		return nil, err
	}
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return &ToggleTaskResult{Task: t, Result: res}, nil
}

func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("task %d not found", id)
	}
	return s.tasks.Delete(ctx, id)
}

// Draw spends DrawCost points on one random card. The card lands at the top
// of the inventory; on InsufficientFunds nothing is written.
func (s *Service) Draw(ctx context.Context) (*DrawResult, error) {
	p, err := s.getProfile(ctx)
	if err != nil {
		return nil, err
	}

	res, err := Draw(p.TotalPoints, s.rng)
	if err != nil {
		return nil, err
	}

	cardID, err := s.cards.Insert(ctx, storage.CardInsert{
		Name:      res.Card.Name,
		Rarity:    res.Card.Rarity,
		Seed:      res.Card.Seed,
		HP:        res.Card.HP,
		ATK:       res.Card.ATK,
		StarLevel: res.Card.StarLevel,
	})
	if err != nil {
		return nil, err
	}
	res.Card.ID = cardID

	p.TotalPoints = res.NewBalance
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return res, nil
}

// MergeableGroups reports the merge options for the current inventory, in
// inventory order.
func (s *Service) MergeableGroups(ctx context.Context) ([]MergeableGroup, error) {
	inv, err := s.cards.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return FindMergeableGroups(inv), nil
}

// Merge consumes three cards of the keyed group and mints the upgraded card.
func (s *Service) Merge(ctx context.Context, key GroupKey) (*MergeOutcome, error) {
	groups, err := s.MergeableGroups(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if g.Key != key {
			continue
		}
		out, err := Merge(g.Cards)
		if err != nil {
			return nil, err
		}
		newID, err := s.cards.ReplaceForMerge(ctx, out.ConsumedIDs, storage.CardInsert{
			Name:      out.NewCard.Name,
			Rarity:    out.NewCard.Rarity,
			Seed:      out.NewCard.Seed,
			HP:        out.NewCard.HP,
			ATK:       out.NewCard.ATK,
			StarLevel: out.NewCard.StarLevel,
		})
		if err != nil {
			return nil, err
		}
		out.NewCard.ID = newID
		return out, nil
	}
	return nil, InvalidMergeGroupError{Reason: fmt.Sprintf("no mergeable group %s/%s/%d★", key.Name, key.Rarity, key.StarLevel)}
}

func (s *Service) AddCategory(ctx context.Context, name, color string) (*storage.Category, error) {
	n, err := normalizeTitle(name)
	if err != nil {
		return nil, err
	}
	if color == "" {
		color = "gray"
	}
	id, err := s.categories.Insert(ctx, n, color)
	if err != nil {
		return nil, err
	}
	return s.categories.Get(ctx, id)
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, name, color string) (*storage.Category, error) {
	cat, err := s.categories.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("category %d not found", id)
	}
	if name != "" {
		n, err := normalizeTitle(name)
		if err != nil {
			return nil, err
		}
		cat.Name = n
	}
	if color != "" {
		cat.Color = color
	}
	if err := s.categories.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// DeleteCategory refuses to delete a category that tasks still reference.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	cat, err := s.categories.Get(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return fmt.Errorf("category %d not found", id)
	}
	n, err := s.tasks.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return CategoryInUseError{Name: cat.Name, TaskCount: n}
	}
	return s.categories.Delete(ctx, id)
}

// ResolveCategory accepts a category id or (case-insensitive) name.
func (s *Service) ResolveCategory(ctx context.Context, ref string) (*storage.Category, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("category is required")
	}
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		cat, err := s.categories.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if cat != nil {
			return cat, nil
		}
	}
	cat, err := s.categories.GetByName(ctx, ref)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("category %q not found", ref)
	}
	return cat, nil
}
