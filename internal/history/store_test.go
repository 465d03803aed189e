package history

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/citecheck/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.HistoryConfig{HistoryDir: t.TempDir(), MaxRuns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResult() types.CheckResult {
	brown := types.Citation{Style: types.StyleAPA, Key: "brown", Year: 2021, Number: -1, Raw: "(Brown, 2021)", Pos: 10}
	garcia := types.Citation{Style: types.StyleAPA, Key: "garcia", Year: 2022, Number: -1, Raw: "(Garcia, 2022)", Pos: 40}
	garciaEntry := types.BibliographyEntry{Key: "garcia", Authors: []string{"Garcia"}, Year: 2023, Number: -1, Pos: 0}
	davisEntry := types.BibliographyEntry{Key: "davis", Authors: []string{"Davis"}, Year: 2018, Number: -1, Pos: 1}

	return types.CheckResult{
		Citations:  []types.Citation{brown, garcia},
		Entries:    []types.BibliographyEntry{garciaEntry, davisEntry},
		Missing:    []types.Citation{brown},
		Uncited:    []types.BibliographyEntry{davisEntry},
		Mismatches: []types.YearMismatch{{Citation: garcia, Entry: garciaEntry}},
	}
}

func TestStoreRecordAndList(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id1, err := s.Record(ctx, "paper.md", sampleResult())
	require.NoError(t, err)
	id2, err := s.Record(ctx, "draft.txt", types.CheckResult{NoBibliography: true})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	runs, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, "draft.txt", runs[0].Path)
	assert.True(t, runs[0].NoBibliography)
	assert.Equal(t, "paper.md", runs[1].Path)
	assert.Equal(t, 2, runs[1].Citations)
	assert.Equal(t, 2, runs[1].Entries)
	assert.Equal(t, 1, runs[1].Missing)
	assert.Equal(t, 1, runs[1].Uncited)
	assert.Equal(t, 1, runs[1].Mismatches)
	assert.False(t, runs[1].CheckedAt.IsZero())
}

func TestStoreIssues(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.Record(ctx, "paper.md", sampleResult())
	require.NoError(t, err)

	issues, err := s.Issues(ctx, id)
	require.NoError(t, err)
	require.Len(t, issues, 3)

	assert.Equal(t, "missing", issues[0].Category)
	assert.Equal(t, "(Brown, 2021)", issues[0].Detail)
	assert.Equal(t, 10, issues[0].Position)

	assert.Equal(t, "uncited", issues[1].Category)
	assert.Equal(t, "Davis, 2018", issues[1].Detail)

	assert.Equal(t, "mismatch", issues[2].Category)
	assert.Contains(t, issues[2].Detail, "(Garcia, 2022)")
	assert.Contains(t, issues[2].Detail, "2023")
}

func TestStoreListLimit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := s.Record(ctx, "paper.md", types.CheckResult{})
		require.NoError(t, err)
	}

	runs, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestStoreIssuesForUnknownRun(t *testing.T) {
	s := testStore(t)

	issues, err := s.Issues(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, issues)
}
