package tasks

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeTaskRepo struct {
	tasks map[string]*Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*Task{}}
}

func (f *fakeTaskRepo) List(ctx context.Context, eventID string) ([]Task, error) {
	var items []Task
	for _, t := range f.tasks {
		if t.EventID == eventID {
			items = append(items, *t)
		}
	}
	return items, nil
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, eventID, taskID string) (*Task, error) {
	t, ok := f.tasks[taskID]
	if !ok || t.EventID != eventID {
		return nil, ErrTaskNotFound
	}
	return t, nil
}

func (f *fakeTaskRepo) Create(ctx context.Context, t *Task) error {
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, t *Task) error {
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, eventID, taskID string) (bool, error) {
	t, ok := f.tasks[taskID]
	if !ok || t.EventID != eventID {
		return false, nil
	}
	delete(f.tasks, taskID)
	return true, nil
}

func deadline() time.Time {
	return time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
}

func TestCreateTaskDefaults(t *testing.T) {
	svc := NewService(newFakeTaskRepo())

	task, err := svc.Create(context.Background(), CreateInput{
		EventID:     "evt-1",
		Description: " Book the venue ",
		Deadline:    deadline(),
		Stage:       StageMonths12To9,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if task.Description != "Book the venue" {
		t.Fatalf("expected trimmed description, got %q", task.Description)
	}
	if task.Responsible != ResponsibleBoth {
		t.Fatalf("expected default responsible, got %q", task.Responsible)
	}
	if task.Priority != PriorityMedium {
		t.Fatalf("expected default priority, got %q", task.Priority)
	}
	if task.Completed {
		t.Fatalf("new task must start incomplete")
	}
}

func TestCreateTaskValidation(t *testing.T) {
	svc := NewService(newFakeTaskRepo())

	cases := []CreateInput{
		{EventID: "evt-1", Description: " ", Deadline: deadline(), Stage: StageMonths12To9},
		{EventID: "evt-1", Description: "x", Stage: StageMonths12To9},
		{EventID: "evt-1", Description: "x", Deadline: deadline(), Stage: Stage("bogus")},
	}
	for i, input := range cases {
		if _, err := svc.Create(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestSetCompletedToggles(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewService(repo)

	task, err := svc.Create(context.Background(), CreateInput{
		EventID:     "evt-1",
		Description: "Send invites",
		Deadline:    deadline(),
		Stage:       StageMonths3To1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.SetCompleted(context.Background(), "evt-1", task.ID, true)
	if err != nil {
		t.Fatalf("set completed: %v", err)
	}
	if !updated.Completed {
		t.Fatalf("expected completed")
	}

	updated, err = svc.SetCompleted(context.Background(), "evt-1", task.ID, false)
	if err != nil {
		t.Fatalf("unset completed: %v", err)
	}
	if updated.Completed {
		t.Fatalf("expected incomplete")
	}
}

func TestSetCompletedScopedToEvent(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewService(repo)

	task, err := svc.Create(context.Background(), CreateInput{
		EventID:     "evt-1",
		Description: "Send invites",
		Deadline:    deadline(),
		Stage:       StageMonths3To1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.SetCompleted(context.Background(), "evt-other", task.ID, true); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound across events, got %v", err)
	}
}

func TestDeleteTaskNotFound(t *testing.T) {
	svc := NewService(newFakeTaskRepo())

	if err := svc.Delete(context.Background(), "evt-1", "missing"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
