package task

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("task not found")

type (
	Repository interface {
		CreateTask(task Task) (Task, error)
		QueryAllTasks() ([]Task, error)
		GetTaskByID(id string) (Task, error)
		UpdateTask(task Task) (Task, error)
		DeleteTask(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nt NewTask) (Task, error) {
	return svc.repo.CreateTask(Task{
		ID:          uuid.NewString(),
		Title:       nt.Title,
		Description: nt.Description,
		DueDate:     nt.DueDate,
		Subject:     nt.Subject,
		Completed:   false,
		Priority:    nt.Priority,
	})
}

func (svc *Service) QueryAll() ([]Task, error) {
	return svc.repo.QueryAllTasks()
}

func (svc *Service) GetByID(id string) (Task, error) {
	return svc.repo.GetTaskByID(id)
}

func (svc *Service) Update(id string, ut UpdateTask) (Task, error) {
	tsk, err := svc.repo.GetTaskByID(id)
	if err != nil {
		return Task{}, err
	}

	// only save set fields
	if ut.Title != nil {
		tsk.Title = *ut.Title
	}
	if ut.Description != nil {
		tsk.Description = *ut.Description
	}
	if ut.DueDate != nil {
		tsk.DueDate = *ut.DueDate
	}
	if ut.Subject != nil {
		tsk.Subject = *ut.Subject
	}
	if ut.Completed != nil {
		tsk.Completed = *ut.Completed
	}
	if ut.Priority != nil {
		tsk.Priority = *ut.Priority
	}
	return svc.repo.UpdateTask(tsk)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteTask(id)
}
