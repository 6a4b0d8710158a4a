package domain

import "time"

// FirstLevelOrder is the only order unlocked for a freshly created player.
const FirstLevelOrder = 1

// Record is one row of the progress ledger, keyed by player and level.
type Record struct {
	PlayerID   int64
	LevelID    int64
	Unlocked   bool
	Completed  bool
	BestTime   float64
	Score      int
	Attempts   int
	LastPlayed time.Time
}

// NewRecord is the default row used when none exists yet.
func NewRecord(playerID, levelID int64) Record {
	return Record{PlayerID: playerID, LevelID: levelID}
}

// MergeBestTime keeps the fastest positive time. A zero current value is
// unset, so the first positive time always lands.
func MergeBestTime(current, candidate float64) float64 {
	if candidate <= 0 {
		return current
	}
	if current <= 0 || candidate < current {
		return candidate
	}
	return current
}

func MergeScore(current, candidate int) int {
	if candidate > current {
		return candidate
	}
	return current
}

// Complete merges a level result into r. Unlock state and attempts are kept.
func (r Record) Complete(completed bool, elapsed float64, score int, now time.Time) Record {
	r.Completed = completed
	r.BestTime = MergeBestTime(r.BestTime, elapsed)
	r.Score = MergeScore(r.Score, score)
	r.LastPlayed = now
	return r
}

func (r Record) Attempt(now time.Time) Record {
	r.Attempts++
	r.LastPlayed = now
	return r
}

// Unlock touches only the unlock flag and the last played time.
func (r Record) Unlock(unlocked bool, now time.Time) Record {
	r.Unlocked = unlocked
	r.LastPlayed = now
	return r
}

// LevelRef is the catalog view the ledger needs when seeding a player.
type LevelRef struct {
	ID    int64
	Order int
}

// InitialRecords builds one row per level with only the first level unlocked.
// ok is false when the catalog has no first level.
func InitialRecords(playerID int64, levels []LevelRef, now time.Time) (records []Record, ok bool) {
	records = make([]Record, 0, len(levels))
	for _, level := range levels {
		record := NewRecord(playerID, level.ID)
		if level.Order == FirstLevelOrder {
			record.Unlocked = true
			ok = true
		}
		record.LastPlayed = now
		records = append(records, record)
	}
	return records, ok
}

// LevelProgress is a record joined with its catalog level.
type LevelProgress struct {
	Record
	LevelName string
	SceneName string
	Order     int
}

// ResumePoint picks the lowest-order unlocked and unfinished level, falling
// back to the lowest-order level overall. ok is false for an empty ledger.
func ResumePoint(rows []LevelProgress) (point LevelProgress, ok bool) {
	var fallback LevelProgress
	for _, row := range rows {
		if row.Unlocked && !row.Completed {
			if !ok || row.Order < point.Order {
				point, ok = row, true
			}
			continue
		}
		if fallback.LevelID == 0 || row.Order < fallback.Order {
			fallback = row
		}
	}
	if ok {
		return point, true
	}
	if fallback.LevelID == 0 {
		return LevelProgress{}, false
	}
	return fallback, true
}
