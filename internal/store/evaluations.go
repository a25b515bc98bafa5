package store

import (
	"time"
)

// Evaluation is one persisted evaluation snapshot for a repository.
type Evaluation struct {
	ID                   int64
	Repository           string
	TakenAt              time.Time
	CodeQualityScore     float64
	ArchitectureScore    float64
	MaintainabilityScore float64
	TestCoverageScore    float64
	MLAIReadinessScore   float64
	OverallScore         float64
	Grade                string
	TotalFiles           int
	TotalLines           int
	FilesAnalyzed        int
}

// InsertEvaluation records an evaluation and returns its ID. TakenAt is
// stamped with the current UTC time if zero.
func (db *DB) InsertEvaluation(ev *Evaluation) (int64, error) {
	takenAt := ev.TakenAt
	if takenAt.IsZero() {
		takenAt = time.Now().UTC()
	}

	result, err := db.conn.Exec(
		`INSERT INTO evaluations
		(repository, taken_at, code_quality_score, architecture_score, maintainability_score,
		 test_coverage_score, ml_ai_readiness_score, overall_score, grade,
		 total_files, total_lines, files_analyzed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Repository, takenAt.Format(time.RFC3339),
		ev.CodeQualityScore, ev.ArchitectureScore, ev.MaintainabilityScore,
		ev.TestCoverageScore, ev.MLAIReadinessScore, ev.OverallScore, ev.Grade,
		ev.TotalFiles, ev.TotalLines, ev.FilesAnalyzed,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListEvaluations returns past evaluations, most recent first, optionally
// filtered by repository. limit <= 0 means no limit.
func (db *DB) ListEvaluations(repository string, limit int) ([]Evaluation, error) {
	query := `SELECT id, repository, taken_at, code_quality_score, architecture_score,
		 maintainability_score, test_coverage_score, ml_ai_readiness_score,
		 overall_score, grade, total_files, total_lines, files_analyzed
		 FROM evaluations`
	var args []any

	if repository != "" {
		query += " WHERE repository = ?"
		args = append(args, repository)
	}
	query += " ORDER BY id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var evals []Evaluation
	for rows.Next() {
		var ev Evaluation
		var takenAt string
		if err := rows.Scan(
			&ev.ID, &ev.Repository, &takenAt,
			&ev.CodeQualityScore, &ev.ArchitectureScore, &ev.MaintainabilityScore,
			&ev.TestCoverageScore, &ev.MLAIReadinessScore, &ev.OverallScore, &ev.Grade,
			&ev.TotalFiles, &ev.TotalLines, &ev.FilesAnalyzed,
		); err != nil {
			return nil, err
		}
		ev.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		evals = append(evals, ev)
	}
	return evals, rows.Err()
}

// LatestEvaluation returns the most recent evaluation for a repository, or
// nil if none exist.
func (db *DB) LatestEvaluation(repository string) (*Evaluation, error) {
	evals, err := db.ListEvaluations(repository, 1)
	if err != nil {
		return nil, err
	}
	if len(evals) == 0 {
		return nil, nil
	}
	return &evals[0], nil
}
