package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platematch/platematch/internal/catalog"
	"github.com/platematch/platematch/internal/scoring"
)

func scored(id int, score float64) Scored {
	return Scored{
		Record:  catalog.Record{ID: id},
		Scoring: scoring.Result{Score: score},
	}
}

func ids(s []Scored) []int {
	out := make([]int, len(s))
	for i, sc := range s {
		out[i] = sc.Record.ID
	}
	return out
}

func TestTop_DescendingScore(t *testing.T) {
	top := Top([]Scored{
		scored(1, 0.2),
		scored(2, 0.9),
		scored(3, 0.5),
		scored(4, 0.7),
	}, 3)

	assert.Equal(t, []int{2, 4, 3}, ids(top))
}

func TestTop_TieBreakByAscendingID(t *testing.T) {
	top := Top([]Scored{
		scored(30, 0.5),
		scored(10, 0.5),
		scored(20, 0.5),
		scored(40, 0.9),
	}, 4)

	assert.Equal(t, []int{40, 10, 20, 30}, ids(top))
}

func TestTop_FewerRecordsThanRequested(t *testing.T) {
	top := Top([]Scored{scored(1, 0.3), scored(2, 0.6)}, 3)
	assert.Equal(t, []int{2, 1}, ids(top))
}

func TestTop_EmptyInput(t *testing.T) {
	assert.Empty(t, Top(nil, 3))
}

func TestTop_NegativeNReturnsNothing(t *testing.T) {
	assert.Empty(t, Top([]Scored{scored(1, 0.3)}, -1))
}

func TestTop_InputNotModified(t *testing.T) {
	in := []Scored{scored(1, 0.1), scored(2, 0.9)}
	_ = Top(in, 1)

	require.Equal(t, 1, in[0].Record.ID, "input order must be preserved")
	require.Equal(t, 2, in[1].Record.ID)
}
