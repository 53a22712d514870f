package http

import (
	"bytes"
	"encoding/json"
	"time"

	"taskmint/internal/model"
	"taskmint/internal/task"
	"taskmint/internal/task/analytics"
	"taskmint/pkg/response"
)

// --- Request DTOs ---

type ownerReq struct {
	UserID   string `json:"userId"   form:"userId"`
	UserType string `json:"userType" form:"userType"`
}

// owner returns the owner pair; an unknown userType leaves the pair invalid.
func (r ownerReq) owner() model.Owner {
	userType, _ := model.ParseUserType(r.UserType)
	return model.Owner{UserID: r.UserID, UserType: userType}
}

type createReq struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Deadline      *string `json:"deadline"`
	EstimatedTime string  `json:"estimatedTime"`
	Priority      string  `json:"priority"`
	UserID        string  `json:"userId"`
	UserType      string  `json:"userType"`

	deadline *time.Time
}

func (r createReq) validate() error {
	if r.Title == "" || r.UserID == "" || r.UserType == "" {
		return errCreateFieldsRequired
	}
	if _, ok := model.ParseUserType(r.UserType); !ok {
		return errCreateFieldsRequired
	}
	return nil
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:         r.Title,
		Description:   r.Description,
		Deadline:      r.deadline,
		EstimatedTime: r.EstimatedTime,
		Priority:      r.Priority,
		Owner:         ownerReq{UserID: r.UserID, UserType: r.UserType}.owner(),
	}
}

// ---

type listReq struct {
	ownerReq
}

func (r listReq) validate() error {
	if r.UserID == "" || r.UserType == "" {
		return errOwnerRequired
	}
	return nil
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Owner: r.owner()}
}

// ---

type updateReq struct {
	ID            string          `json:"-"` // populated from URI param
	Title         *string         `json:"title"`
	Description   *string         `json:"description"`
	Deadline      json.RawMessage `json:"deadline" swaggertype:"string"`
	EstimatedTime *string         `json:"estimatedTime"`
	Priority      *string         `json:"priority"`
	Completed     *bool           `json:"completed"`

	deadline task.OptionalTime
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Deadline:      r.deadline,
		EstimatedTime: r.EstimatedTime,
		Priority:      r.Priority,
		Completed:     r.Completed,
	}
}

// deadlineNull reports whether the patch sent "deadline": null.
func (r updateReq) deadlineNull() bool {
	return bytes.Equal(bytes.TrimSpace(r.Deadline), []byte("null"))
}

// ---

type analyticsReq struct {
	ownerReq
}

func (r analyticsReq) validate() error {
	if r.UserID == "" || r.UserType == "" {
		return errOwnerRequired
	}
	return nil
}

func (r analyticsReq) toInput() task.AnalyticsInput {
	return task.AnalyticsInput{Owner: r.owner()}
}

// ---

type parseVoiceReq struct {
	Transcript string  `json:"transcript"`
	UserID     string  `json:"userId"`
	UserType   string  `json:"userType"`
	Today      *string `json:"today"`

	today *time.Time
}

func (r parseVoiceReq) validate() error {
	if r.Transcript == "" {
		return errTranscriptRequired
	}
	return nil
}

func (r parseVoiceReq) toInput() task.ParseVoiceInput {
	return task.ParseVoiceInput{
		Transcript: r.Transcript,
		Today:      r.today,
		Owner:      ownerReq{UserID: r.UserID, UserType: r.UserType}.owner(),
	}
}

// ---

// defaultDocumentUserType applies when a document request omits userType.
const defaultDocumentUserType = "gmail"

type sendTextReq struct {
	ExtractedText string `json:"extractedText"`
	SessionID     string `json:"sessionId"`
	UserID        string `json:"userId"`
	UserType      string `json:"userType"`
}

func (r sendTextReq) validate() error {
	if r.ExtractedText == "" {
		return errExtractedTextRequired
	}
	return nil
}

func (r sendTextReq) toInput() task.ExtractDocumentInput {
	userType := r.UserType
	if userType == "" {
		userType = defaultDocumentUserType
	}
	return task.ExtractDocumentInput{
		ExtractedText: r.ExtractedText,
		Owner:         ownerReq{UserID: r.UserID, UserType: userType}.owner(),
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID            string     `json:"_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Deadline      *time.Time `json:"deadline"`
	EstimatedTime string     `json:"estimatedTime"`
	Priority      string     `json:"priority"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completedAt"`
	UserID        string     `json:"userId"`
	UserType      string     `json:"userType"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Deadline:      t.Deadline,
		EstimatedTime: t.EstimatedTime,
		Priority:      string(t.Priority),
		Completed:     t.Completed,
		CompletedAt:   t.CompletedAt,
		UserID:        t.UserID,
		UserType:      string(t.UserType),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type taskEnvelope struct {
	response.Resp
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) taskEnvelope {
	return taskEnvelope{Resp: response.NewOKResp("Task created successfully"), Task: newTaskResp(out.Task)}
}

func (h *handler) newUpdateResp(out task.UpdateOutput) taskEnvelope {
	return taskEnvelope{Resp: response.NewOKResp("Task updated successfully"), Task: newTaskResp(out.Task)}
}

type listResp struct {
	response.Resp
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{Resp: response.NewOKResp(""), Tasks: newTaskResps(out.Tasks)}
}

type parseVoiceResp struct {
	response.Resp
	Tasks    []taskResp            `json:"tasks"`
	Failures []task.ElementFailure `json:"failures"`
	Warning  string                `json:"warning,omitempty"`
	Data     json.RawMessage       `json:"data" swaggertype:"object"`
}

func (h *handler) newParseVoiceResp(out task.ExtractionOutput) parseVoiceResp {
	return parseVoiceResp{
		Resp:     response.NewOKResp("Tasks created from voice input"),
		Tasks:    newTaskResps(out.Tasks),
		Failures: nonNilFailures(out.Failures),
		Warning:  out.Warning,
		Data:     rawOrNull(out.Raw),
	}
}

type sendTextResp struct {
	response.Resp
	Data       json.RawMessage       `json:"data" swaggertype:"object"`
	SavedTasks []taskResp            `json:"savedTasks"`
	Failures   []task.ElementFailure `json:"failures"`
	Warning    string                `json:"warning,omitempty"`
}

func (h *handler) newSendTextResp(out task.ExtractionOutput) sendTextResp {
	return sendTextResp{
		Resp:       response.NewOKResp("Text sent to LangFlow successfully"),
		Data:       rawOrNull(out.Raw),
		SavedTasks: newTaskResps(out.Tasks),
		Failures:   nonNilFailures(out.Failures),
		Warning:    out.Warning,
	}
}

type recentCompletionResp struct {
	taskResp
	CompletionTimeHours float64 `json:"completionTimeHours"`
}

type analyticsBody struct {
	TotalTasks             int                                            `json:"totalTasks"`
	CompletedTasks         int                                            `json:"completedTasks"`
	CompletionRate         float64                                        `json:"completionRate"`
	AvgCompletionTimeHours float64                                        `json:"avgCompletionTimeHours"`
	PriorityAnalysis       map[model.Priority]analytics.PriorityBreakdown `json:"priorityAnalysis"`
	MonthlyData            []analytics.MonthBucket                        `json:"monthlyData"`
	CompletionTimeline     []analytics.TimelinePoint                      `json:"completionTimeline"`
	RecentCompletions      []recentCompletionResp                         `json:"recentCompletions"`
}

type analyticsResp struct {
	response.Resp
	Analytics analyticsBody `json:"analytics"`
}

func (h *handler) newAnalyticsResp(out task.AnalyticsOutput) analyticsResp {
	r := out.Report
	recent := make([]recentCompletionResp, len(r.RecentCompletions))
	for i, rc := range r.RecentCompletions {
		recent[i] = recentCompletionResp{taskResp: newTaskResp(rc.Task), CompletionTimeHours: rc.CompletionTimeHours}
	}
	timeline := r.CompletionTimeline
	if timeline == nil {
		timeline = []analytics.TimelinePoint{}
	}
	return analyticsResp{
		Resp: response.NewOKResp(""),
		Analytics: analyticsBody{
			TotalTasks:             r.TotalTasks,
			CompletedTasks:         r.CompletedTasks,
			CompletionRate:         r.CompletionRate,
			AvgCompletionTimeHours: r.AvgCompletionTimeHours,
			PriorityAnalysis:       r.PriorityAnalysis,
			MonthlyData:            r.MonthlyData,
			CompletionTimeline:     timeline,
			RecentCompletions:      recent,
		},
	}
}

func nonNilFailures(f []task.ElementFailure) []task.ElementFailure {
	if f == nil {
		return []task.ElementFailure{}
	}
	return f
}

func rawOrNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return raw
}
