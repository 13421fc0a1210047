package quality

import (
	"sort"

	"github.com/gnames/gnprimer/pkg/primer3"
	"golang.org/x/sync/errgroup"
)

// ScoreAll scores pairs with up to jobs concurrent workers and returns them
// ranked and sorted by quality, best first.
func (s *Scorer) ScoreAll(pairs []primer3.PrimerPair, jobs int) []Ranked {
	if jobs < 1 {
		jobs = 1
	}
	scores := make([]Score, len(pairs))

	chunk := (len(pairs) + jobs - 1) / jobs
	if chunk == 0 {
		chunk = 1
	}

	var g errgroup.Group
	g.SetLimit(jobs)
	for start := 0; start < len(pairs); start += chunk {
		end := min(start+chunk, len(pairs))
		g.Go(func() error {
			for i := start; i < end; i++ {
				scores[i] = s.Score(pairs[i])
			}
			return nil
		})
	}
	// workers never return errors
	_ = g.Wait()

	return Rank(scores)
}

// Rank assigns global ranks and ranks inside each sequence id. Higher
// quality ranks first; equal scores keep their input order. The result is
// sorted by quality, best first.
func Rank(scores []Score) []Ranked {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]].Quality > scores[idx[b]].Quality
	})

	groups := make(map[string]int)
	res := make([]Ranked, len(scores))
	for pos, i := range idx {
		sc := scores[i]
		groups[sc.Pair.SequenceID]++
		res[pos] = Ranked{
			Score:       sc,
			GlobalRank:  pos + 1,
			RankInGroup: groups[sc.Pair.SequenceID],
		}
	}
	return res
}
