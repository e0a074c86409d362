package jsondb

import (
	"github.com/devshaki/ShakSite/core/task"
)

type taskRepository struct {
	db *table
}

var _ task.Repository = (*taskRepository)(nil) // interface compliance check

func NewTaskRepository(db *DB) task.Repository {
	return &taskRepository{db: db.task}
}

func (repo *taskRepository) CreateTask(tsk task.Task) (task.Task, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	var tasks []task.Task
	if err := repo.db.load(&tasks); err != nil {
		return task.Task{}, err
	}
	tasks = append(tasks, tsk)
	if err := repo.db.save(tasks); err != nil {
		return task.Task{}, err
	}
	return tsk, nil
}

func (repo *taskRepository) QueryAllTasks() ([]task.Task, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var tasks []task.Task
	if err := repo.db.load(&tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *taskRepository) GetTaskByID(id string) (task.Task, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var tasks []task.Task
	if err := repo.db.load(&tasks); err != nil {
		return task.Task{}, err
	}
	for _, tsk := range tasks {
		if tsk.ID == id {
			return tsk, nil
		}
	}
	return task.Task{}, task.ErrNotFound
}

func (repo *taskRepository) UpdateTask(tsk task.Task) (task.Task, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	var tasks []task.Task
	if err := repo.db.load(&tasks); err != nil {
		return task.Task{}, err
	}
	for i := range tasks {
		if tasks[i].ID == tsk.ID {
			tasks[i] = tsk
			if err := repo.db.save(tasks); err != nil {
				return task.Task{}, err
			}
			return tsk, nil
		}
	}
	return task.Task{}, task.ErrNotFound
}

func (repo *taskRepository) DeleteTask(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	var tasks []task.Task
	if err := repo.db.load(&tasks); err != nil {
		return err
	}
	filtered := tasks[:0]
	for _, tsk := range tasks {
		if tsk.ID != id {
			filtered = append(filtered, tsk)
		}
	}
	if len(filtered) == len(tasks) {
		return task.ErrNotFound
	}
	return repo.db.save(filtered)
}
