package jsondb

import (
	"github.com/devshaki/ShakSite/core/exam"
)

type examRepository struct {
	db *table
}

var _ exam.Repository = (*examRepository)(nil) // interface compliance check

func NewExamRepository(db *DB) exam.Repository {
	return &examRepository{db: db.exam}
}

func (repo *examRepository) CreateExam(ex exam.Exam) (exam.Exam, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	var exams []exam.Exam
	if err := repo.db.load(&exams); err != nil {
		return exam.Exam{}, err
	}
	exams = append(exams, ex)
	if err := repo.db.save(exams); err != nil {
		return exam.Exam{}, err
	}
	return ex, nil
}

func (repo *examRepository) QueryAllExams() ([]exam.Exam, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var exams []exam.Exam
	if err := repo.db.load(&exams); err != nil {
		return nil, err
	}
	return exams, nil
}

func (repo *examRepository) GetExamByID(id string) (exam.Exam, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var exams []exam.Exam
	if err := repo.db.load(&exams); err != nil {
		return exam.Exam{}, err
	}
	for _, ex := range exams {
		if ex.ID == id {
			return ex, nil
		}
	}
	return exam.Exam{}, exam.ErrNotFound
}

func (repo *examRepository) UpdateExam(ex exam.Exam) (exam.Exam, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	var exams []exam.Exam
	if err := repo.db.load(&exams); err != nil {
		return exam.Exam{}, err
	}
	for i := range exams {
		if exams[i].ID == ex.ID {
			exams[i] = ex
			if err := repo.db.save(exams); err != nil {
				return exam.Exam{}, err
			}
			return ex, nil
		}
	}
	return exam.Exam{}, exam.ErrNotFound
}

func (repo *examRepository) DeleteExam(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	var exams []exam.Exam
	if err := repo.db.load(&exams); err != nil {
		return err
	}
	filtered := exams[:0]
	for _, ex := range exams {
		if ex.ID != id {
			filtered = append(filtered, ex)
		}
	}
	if len(filtered) == len(exams) {
		return exam.ErrNotFound
	}
	return repo.db.save(filtered)
}
