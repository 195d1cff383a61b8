package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/grades/model"
)

func newGradeDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.GradeModel{}))
	return db
}

func TestAverageEmptySet(t *testing.T) {
	assert.Equal(t, 0.0, Average(nil))
	assert.Equal(t, 0.0, Average([]float64{}))
}

func TestAverage(t *testing.T) {
	assert.Equal(t, 80.0, Average([]float64{90, 70}))
	assert.Equal(t, 85.0, Average([]float64{85}))
}

func TestAveragesByLesson(t *testing.T) {
	grades := []model.GradeModel{
		{StudentID: "ST1000", LessonID: "L100", ExamNumber: 1, Score: 90},
		{StudentID: "ST1000", LessonID: "L100", ExamNumber: 2, Score: 70},
		{StudentID: "ST1000", LessonID: "L101", ExamNumber: 1, Score: 55},
	}

	got := AveragesByLesson(grades)

	assert.Equal(t, map[string]float64{
		"L100": 80.0,
		"L101": 55.0,
	}, got)
}

func TestAveragesByLessonEmpty(t *testing.T) {
	assert.Empty(t, AveragesByLesson(nil))
}

// Seeded rows carry explicit IDs so the sequence-backed BeforeCreate hook
// stays out of the way.
func TestUpsertUpdatesInPlace(t *testing.T) {
	db := newGradeDB(t)
	require.NoError(t, db.Create(&model.GradeModel{
		GradeID: "G1", StudentID: "ST1000", LessonID: "L100", ExamNumber: 1, Score: 80,
	}).Error)

	got, err := Upsert(db, "ST1000", "L100", 1, 90, "retake")
	require.NoError(t, err)
	assert.Equal(t, "G1", got.GradeID, "same composite key must hit the same row")
	assert.Equal(t, 90.0, got.Score)
	assert.Equal(t, "retake", got.Notes)

	// identical call again changes nothing
	again, err := Upsert(db, "ST1000", "L100", 1, 90, "retake")
	require.NoError(t, err)
	assert.Equal(t, "G1", again.GradeID)
	assert.Equal(t, 90.0, again.Score)

	var rows []model.GradeModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1, "repeated upserts must not multiply rows")
	assert.Equal(t, 90.0, rows[0].Score)
	assert.Equal(t, "retake", rows[0].Notes)
}

func TestUpsertTouchesOnlyItsExam(t *testing.T) {
	db := newGradeDB(t)
	require.NoError(t, db.Create(&model.GradeModel{
		GradeID: "G1", StudentID: "ST1000", LessonID: "L100", ExamNumber: 1, Score: 80,
	}).Error)
	require.NoError(t, db.Create(&model.GradeModel{
		GradeID: "G2", StudentID: "ST1000", LessonID: "L100", ExamNumber: 2, Score: 70,
	}).Error)

	got, err := Upsert(db, "ST1000", "L100", 2, 75, "")
	require.NoError(t, err)
	assert.Equal(t, "G2", got.GradeID)

	var first model.GradeModel
	require.NoError(t, db.First(&first, "grade_id = ?", "G1").Error)
	assert.Equal(t, 80.0, first.Score, "other exam numbers stay untouched")
}
