package mood

import (
	"sort"

	"github.com/lifenav/lifenav/pkg/models"
)

// NoData is the average label of an empty log.
const NoData = "no data"

const topTags = 5

// TagCount is a tag and the number of entries carrying it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Summary describes a set of mood entries.
type Summary struct {
	Total        int                 `json:"total"`
	GoodDays     int                 `json:"good_days"`
	TaggedDays   int                 `json:"tagged_days"`
	Counts       map[models.Mood]int `json:"counts"`
	CommonTags   []TagCount          `json:"common_tags"`
	AverageScore float64             `json:"average_score"`
	AverageMood  string              `json:"average_mood"`
}

// Summarize computes the statistics shown on the mood screen. Good days are
// entries rated good or great. CommonTags holds at most five tags, most frequent
// first, ties in order of first appearance.
func Summarize(entries []models.MoodEntry) Summary {
	sum := Summary{
		Total:       len(entries),
		Counts:      make(map[models.Mood]int, len(models.Moods)),
		CommonTags:  []TagCount{},
		AverageMood: NoData,
	}
	for _, m := range models.Moods {
		sum.Counts[m] = 0
	}

	tagCounts := map[string]int{}
	var tagOrder []string
	score, scored := 0, 0
	for _, e := range entries {
		if e.Mood.Score() > 0 {
			sum.Counts[e.Mood]++
		}
		if e.Mood == models.MoodGood || e.Mood == models.MoodGreat {
			sum.GoodDays++
		}
		if len(e.Tags) > 0 {
			sum.TaggedDays++
		}
		for _, t := range e.Tags {
			if _, seen := tagCounts[t]; !seen {
				tagOrder = append(tagOrder, t)
			}
			tagCounts[t]++
		}
		if sc := e.Mood.Score(); sc > 0 {
			score += sc
			scored++
		}
	}

	for _, t := range tagOrder {
		sum.CommonTags = append(sum.CommonTags, TagCount{Tag: t, Count: tagCounts[t]})
	}
	sort.SliceStable(sum.CommonTags, func(i, j int) bool {
		return sum.CommonTags[i].Count > sum.CommonTags[j].Count
	})
	if len(sum.CommonTags) > topTags {
		sum.CommonTags = sum.CommonTags[:topTags]
	}

	if scored > 0 {
		sum.AverageScore = float64(score) / float64(scored)
		sum.AverageMood = string(models.MoodForAverage(sum.AverageScore))
	}
	return sum
}

// Summary summarizes the whole log.
func (s *Store) Summary() Summary {
	return Summarize(s.Entries())
}
