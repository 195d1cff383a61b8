// Package service implements the grade book: upsert on the composite key
// (student, lesson, exam number) and per-lesson score averaging.
package service

import (
	"errors"

	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/grades/model"
)

// Upsert looks up the grade for (student, lesson, examNumber) and updates
// score and notes in place, or inserts a fresh row when none exists. It
// returns the post-state row. Callers run it inside a transaction; repeating
// the identical call is then a no-op update.
func Upsert(tx *gorm.DB, studentID, lessonID string, examNumber int, score float64, notes string) (*model.GradeModel, error) {
	var grade model.GradeModel
	err := tx.
		Where("grade_student_id = ? AND grade_lesson_id = ? AND grade_exam_number = ?",
			studentID, lessonID, examNumber).
		First(&grade).Error
	switch {
	case err == nil:
		grade.Score = score
		grade.Notes = notes
		if err := tx.Save(&grade).Error; err != nil {
			return nil, err
		}
		return &grade, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		grade = model.GradeModel{
			StudentID:  studentID,
			LessonID:   lessonID,
			ExamNumber: examNumber,
			Score:      score,
			Notes:      notes,
		}
		if err := tx.Create(&grade).Error; err != nil {
			return nil, err
		}
		return &grade, nil
	default:
		return nil, err
	}
}

// Average is the arithmetic mean of the given scores, 0.0 for an empty set.
func Average(scores []float64) float64 {
	if len(scores) == 0 {
		return 0.0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// AveragesByLesson groups the grades by lesson and averages each group.
// Lessons without grades simply never appear.
func AveragesByLesson(grades []model.GradeModel) map[string]float64 {
	byLesson := make(map[string][]float64)
	for _, g := range grades {
		byLesson[g.LessonID] = append(byLesson[g.LessonID], g.Score)
	}
	averages := make(map[string]float64, len(byLesson))
	for lessonID, scores := range byLesson {
		averages[lessonID] = Average(scores)
	}
	return averages
}
