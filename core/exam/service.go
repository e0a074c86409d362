package exam

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("exam not found")

type (
	Repository interface {
		CreateExam(exam Exam) (Exam, error)
		QueryAllExams() ([]Exam, error)
		GetExamByID(id string) (Exam, error)
		UpdateExam(exam Exam) (Exam, error)
		DeleteExam(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ne NewExam) (Exam, error) {
	return svc.repo.CreateExam(Exam{
		ID:      uuid.NewString(),
		Subject: ne.Subject,
		Date:    ne.Date,
		Time:    ne.Time,
		Room:    ne.Room,
		Notes:   ne.Notes,
		ClassID: ne.ClassID,
	})
}

func (svc *Service) QueryAll() ([]Exam, error) {
	return svc.repo.QueryAllExams()
}

func (svc *Service) GetByID(id string) (Exam, error) {
	return svc.repo.GetExamByID(id)
}

func (svc *Service) Update(id string, ue UpdateExam) (Exam, error) {
	ex, err := svc.repo.GetExamByID(id)
	if err != nil {
		return Exam{}, err
	}

	// only save set fields
	if ue.Subject != nil {
		ex.Subject = *ue.Subject
	}
	if ue.Date != nil {
		ex.Date = *ue.Date
	}
	if ue.Time != nil {
		ex.Time = *ue.Time
	}
	if ue.Room != nil {
		ex.Room = *ue.Room
	}
	if ue.Notes != nil {
		ex.Notes = *ue.Notes
	}
	if ue.ClassID != nil {
		ex.ClassID = *ue.ClassID
	}
	return svc.repo.UpdateExam(ex)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteExam(id)
}
