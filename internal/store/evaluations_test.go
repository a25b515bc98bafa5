package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sampleEvaluation(repo string, overall float64) *Evaluation {
	return &Evaluation{
		Repository:           repo,
		CodeQualityScore:     80,
		ArchitectureScore:    70,
		MaintainabilityScore: 60,
		TestCoverageScore:    40,
		MLAIReadinessScore:   20,
		OverallScore:         overall,
		Grade:                "B",
		TotalFiles:           42,
		TotalLines:           1234,
		FilesAnalyzed:        30,
	}
}

func TestOpen_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "repograde.db")
	db, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = db.InsertEvaluation(sampleEvaluation("r", 65))
	assert.NoError(t, err)
}

func TestInsertAndListEvaluations(t *testing.T) {
	db := openTestDB(t)

	id, err := db.InsertEvaluation(sampleEvaluation("github.com/a/b", 72.5))
	require.NoError(t, err)
	assert.Positive(t, id)

	evals, err := db.ListEvaluations("", 0)
	require.NoError(t, err)
	require.Len(t, evals, 1)

	ev := evals[0]
	assert.Equal(t, "github.com/a/b", ev.Repository)
	assert.Equal(t, 72.5, ev.OverallScore)
	assert.Equal(t, "B", ev.Grade)
	assert.Equal(t, 42, ev.TotalFiles)
	assert.Equal(t, 30, ev.FilesAnalyzed)
	assert.WithinDuration(t, time.Now().UTC(), ev.TakenAt, time.Minute)
}

func TestListEvaluations_FilterAndOrder(t *testing.T) {
	db := openTestDB(t)

	_, err := db.InsertEvaluation(sampleEvaluation("repo-a", 50))
	require.NoError(t, err)
	_, err = db.InsertEvaluation(sampleEvaluation("repo-b", 60))
	require.NoError(t, err)
	_, err = db.InsertEvaluation(sampleEvaluation("repo-a", 70))
	require.NoError(t, err)

	all, err := db.ListEvaluations("", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Most recent first.
	assert.Equal(t, 70.0, all[0].OverallScore)

	onlyA, err := db.ListEvaluations("repo-a", 0)
	require.NoError(t, err)
	require.Len(t, onlyA, 2)
	for _, ev := range onlyA {
		assert.Equal(t, "repo-a", ev.Repository)
	}
}

func TestListEvaluations_Limit(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 5; i++ {
		_, err := db.InsertEvaluation(sampleEvaluation("r", float64(i)))
		require.NoError(t, err)
	}

	evals, err := db.ListEvaluations("", 2)
	require.NoError(t, err)
	assert.Len(t, evals, 2)
}

func TestLatestEvaluation(t *testing.T) {
	db := openTestDB(t)

	latest, err := db.LatestEvaluation("r")
	require.NoError(t, err)
	assert.Nil(t, latest)

	_, err = db.InsertEvaluation(sampleEvaluation("r", 55))
	require.NoError(t, err)
	_, err = db.InsertEvaluation(sampleEvaluation("r", 66))
	require.NoError(t, err)

	latest, err = db.LatestEvaluation("r")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 66.0, latest.OverallScore)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Migrate())
	require.NoError(t, db.Migrate())

	_, err := db.InsertEvaluation(sampleEvaluation("r", 60))
	assert.NoError(t, err)
}
