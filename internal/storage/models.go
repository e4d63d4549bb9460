package storage

import "time"

type Profile struct {
	Key            string
	Name           string
	TotalPoints    int
	Streak         int
	LastActiveDate string // calendar date, formatted 2006-01-02
}

type Task struct {
	ID         int64
	CategoryID int64
	Title      string
	Difficulty int
	Points     int
	Completed  bool
	Period     string // "daily" or "once"
	CreatedAt  time.Time
}

type Category struct {
	ID    int64
	Name  string
	Color string
}

type Card struct {
	ID        int64
	Name      string
	Rarity    string
	Seed      string
	HP        int
	ATK       int
	StarLevel int
	CreatedAt time.Time
}
