package services

import (
	"errors"
	"fmt"
	"strings"

	"geronimocrm/internal/models"
	"geronimocrm/internal/repositories"
)

type TaskService struct {
	Repo       *repositories.TaskRepository
	ClientRepo *repositories.ClientRepository
}

func NewTaskService(repo *repositories.TaskRepository, clientRepo *repositories.ClientRepository) *TaskService {
	return &TaskService{Repo: repo, ClientRepo: clientRepo}
}

func (s *TaskService) Create(task *models.Task) error {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return errors.New("title is required")
	}
	if err := validISODate(task.DueDate); err != nil {
		return fmt.Errorf("due_date: %w", err)
	}
	if task.Status == "" {
		task.Status = "Open"
	}
	if !models.ValidTaskStatus(task.Status) {
		return fmt.Errorf("unknown task status %q", task.Status)
	}
	if task.ClientID != nil {
		client, err := s.ClientRepo.GetByID(*task.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return errors.New("client not found")
		}
	}
	id, err := s.Repo.Create(task)
	if err != nil {
		return err
	}
	task.ID = int(id)
	return nil
}

func (s *TaskService) FindAll(filter models.TaskFilter) ([]models.Task, error) {
	if filter.Status != nil && !models.ValidTaskStatus(*filter.Status) {
		return nil, fmt.Errorf("unknown task status %q", *filter.Status)
	}
	return s.Repo.FindAll(filter)
}

func (s *TaskService) ChangeStatus(id int, status string) error {
	if !models.ValidTaskStatus(status) {
		return fmt.Errorf("unknown task status %q", status)
	}
	task, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if task == nil {
		return errors.New("task not found")
	}
	return s.Repo.UpdateStatus(id, status)
}
