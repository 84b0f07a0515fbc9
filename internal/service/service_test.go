package service

import (
	"context"
	"testing"

	"todo_manager/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func TestNewService_WiresAllSubServices(t *testing.T) {
	s := NewService(repository.NewMemoryRepository(), Options{SigningKey: "k", BcryptCost: bcrypt.MinCost})

	if s.Authorization == nil || s.Tasks == nil || s.Analytics == nil || s.ActivityLog == nil || s.Health == nil {
		t.Fatalf("service not fully wired: %+v", s)
	}
	if err := s.Health.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestNewService_EndToEndFlow(t *testing.T) {
	s := NewService(repository.NewMemoryRepository(), Options{SigningKey: "k", BcryptCost: bcrypt.MinCost})
	c := context.Background()

	if _, err := s.SignUp(c, "alice", "a@x.com", "pw"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	token, uid, err := s.GenerateToken(c, "alice", "pw")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if parsed, err := s.ParseToken(token); err != nil || parsed != uid {
		t.Fatalf("ParseToken = %d, %v; want %d", parsed, err, uid)
	}

	task, err := s.AddTask(c, uid, "Buy milk", "2099-01-01")
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	sum, _ := s.Summarize(c, uid)
	if sum.PendingTasks != 1 || sum.TotalTasks != 1 {
		t.Fatalf("unexpected summary before toggle: %+v", sum)
	}

	if _, err := s.ToggleTask(c, uid, task.ID); err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}
	sum, _ = s.Summarize(c, uid)
	if sum.CompletedTasks != 1 || sum.PendingTasks != 0 || sum.OverdueTasks != 0 {
		t.Fatalf("unexpected summary after toggle: %+v", sum)
	}
}
