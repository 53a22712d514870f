package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"taskmint/internal/model"
	"taskmint/internal/task/analytics"
	"taskmint/internal/task/repository"
	"taskmint/pkg/langflow"
	"taskmint/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo is an in-memory task store.
type mockRepo struct {
	tasks      map[string]model.Task
	nextID     int
	failTitle  string
	err        error
	lastUpdate repository.UpdateTaskOptions
	listCalls  int
}

func newMockRepo() *mockRepo {
	return &mockRepo{tasks: map[string]model.Task{}}
}

func (m *mockRepo) put(t model.Task) {
	m.tasks[t.ID] = t
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	if m.failTitle != "" && opt.Title == m.failTitle {
		return model.Task{}, errors.New("insert failed")
	}
	m.nextID++
	t := model.Task{
		ID:            fmt.Sprintf("t%d", m.nextID),
		Title:         opt.Title,
		Description:   opt.Description,
		Deadline:      opt.Deadline,
		EstimatedTime: opt.EstimatedTime,
		Priority:      opt.Priority,
		UserID:        opt.UserID,
		UserType:      opt.UserType,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	return m.tasks[opt.ID], nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Task
	for _, t := range m.tasks {
		if t.UserID == opt.UserID && t.UserType == opt.UserType {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	m.lastUpdate = opt
	if m.err != nil {
		return model.Task{}, m.err
	}
	t, ok := m.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.Description != nil {
		t.Description = *opt.Description
	}
	if opt.ClearDeadline {
		t.Deadline = nil
	} else if opt.Deadline != nil {
		t.Deadline = opt.Deadline
	}
	if opt.EstimatedTime != nil {
		t.EstimatedTime = *opt.EstimatedTime
	}
	if opt.Priority != nil {
		t.Priority = *opt.Priority
	}
	if opt.Completed != nil {
		t.Completed = *opt.Completed
	}
	if opt.ClearCompletedAt {
		t.CompletedAt = nil
	} else if opt.CompletedAt != nil {
		t.CompletedAt = opt.CompletedAt
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.tasks[id]; !ok {
		return false, nil
	}
	delete(m.tasks, id)
	return true, nil
}

// mockCache records cache traffic.
type mockCache struct {
	reports     map[repository.ReportKey]analytics.Report
	gens        map[model.Owner]int64
	invalidated []model.Owner
	// beforeSet runs before a report is stored.
	beforeSet func()
}

func newMockCache() *mockCache {
	return &mockCache{
		reports: map[repository.ReportKey]analytics.Report{},
		gens:    map[model.Owner]int64{},
	}
}

func (m *mockCache) Generation(ctx context.Context, owner model.Owner) (int64, bool) {
	return m.gens[owner], true
}

func (m *mockCache) GetReport(ctx context.Context, key repository.ReportKey) (analytics.Report, bool) {
	r, ok := m.reports[key]
	return r, ok
}

func (m *mockCache) SetReport(ctx context.Context, key repository.ReportKey, report analytics.Report) {
	if m.beforeSet != nil {
		m.beforeSet()
	}
	m.reports[key] = report
}

func (m *mockCache) Invalidate(ctx context.Context, owner model.Owner) {
	m.gens[owner]++
	m.invalidated = append(m.invalidated, owner)
}

// mockProvider returns a canned completion.
type mockProvider struct {
	content string
	err     error
	lastReq *llmprovider.Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: m.content}}},
		ProviderName: m.Name(),
		ModelName:    m.Model(),
	}, nil
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return "mock-model" }

func newManager(p llmprovider.Provider) *llmprovider.Manager {
	return llmprovider.NewManager([]llmprovider.Provider{p}, &llmprovider.Config{RetryAttempts: 1}, &mockLogger{})
}

// statusError carries an upstream HTTP status.
type statusError struct {
	status int
}

func (e *statusError) Error() string   { return fmt.Sprintf("status %d", e.status) }
func (e *statusError) HTTPStatus() int { return e.status }

// mockLangFlow returns a canned run result.
type mockLangFlow struct {
	configured bool
	result     *langflow.RunResult
	err        error
	lastInput  string
}

func (m *mockLangFlow) Run(ctx context.Context, input string) (*langflow.RunResult, error) {
	m.lastInput = input
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockLangFlow) Configured() bool { return m.configured }

func runResult(message string) *langflow.RunResult {
	msg, _ := json.Marshal(langflow.ChatMessage{Message: message, Sender: "Machine"})
	return &langflow.RunResult{
		Raw: []byte(`{"session_id":"s1"}`),
		Response: langflow.RunResponse{
			SessionID: "s1",
			Outputs: []langflow.RunOutput{{
				Outputs: []langflow.ComponentOutput{{
					Outputs: langflow.ComponentOutputs{Message: msg},
				}},
			}},
		},
	}
}
