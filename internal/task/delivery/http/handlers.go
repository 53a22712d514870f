package http

import (
	"github.com/gin-gonic/gin"

	"taskmint/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task for the given owner. Unknown priorities are stored as medium.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201  {object} taskEnvelope
// @Failure     400  {object} response.Resp "Title, userId, and userType are required"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err, msgCreateFailed))
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns every task of one owner, newest first.
// @Tags        Tasks
// @Produce     json
// @Param       userId   query string true "Owner id"
// @Param       userType query string true "Owner type (custom/gmail)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "userId and userType are required"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err, msgListFailed))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Applies a partial update. "deadline": null clears the deadline; completed toggles completedAt.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200 {object} taskEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err, msgUpdateFailed))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err, msgDeleteFailed))
		return
	}

	response.OK(c, response.NewOKResp("Task deleted successfully"))
}

// Analytics godoc
// @Summary     Task analytics
// @Description Completion statistics over all tasks of one owner.
// @Tags        Tasks
// @Produce     json
// @Param       userId   query string true "Owner id"
// @Param       userType query string true "Owner type (custom/gmail)"
// @Success     200 {object} analyticsResp
// @Failure     400 {object} response.Resp "userId and userType are required"
// @Failure     500 {object} response.Resp "Error fetching task analytics"
// @Router      /api/tasks/analytics [GET]
func (h *handler) Analytics(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyticsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analytics(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Analytics: %v", err)
		response.Error(c, h.mapError(err, msgAnalyticsFailed))
		return
	}

	response.OK(c, h.newAnalyticsResp(output))
}

// ParseVoice godoc
// @Summary     Create tasks from a voice transcript
// @Description Splits the transcript into tasks with a language model and stores each one.
// @Description A reply that is not a JSON array yields no tasks and a warning.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body parseVoiceReq true "Transcript and owner"
// @Success     201 {object} parseVoiceResp
// @Failure     400 {object} response.Resp "Transcript is required"
// @Failure     429 {object} response.Resp "Rate limit exceeded"
// @Failure     500 {object} response.Resp "Error processing voice input"
// @Router      /api/tasks/parse-voice [POST]
func (h *handler) ParseVoice(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseVoiceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ParseVoice(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseVoice: %v", err)
		response.ErrorDetail(c, h.mapError(err, msgVoiceFailed), errorDetail(err))
		return
	}

	response.Created(c, h.newParseVoiceResp(output))
}

// SendText godoc
// @Summary     Create tasks from document text
// @Description Forwards already extracted email or document text to the LangFlow flow and stores the tasks it returns.
// @Tags        LangFlow
// @Accept      json
// @Produce     json
// @Param       body body sendTextReq true "Extracted text and owner"
// @Success     200 {object} sendTextResp
// @Failure     400 {object} response.Resp "extractedText is required"
// @Failure     429 {object} response.Resp "Rate limit exceeded"
// @Failure     500 {object} response.Resp "Failed to send text to LangFlow"
// @Router      /langflow/send-text [POST]
func (h *handler) SendText(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendTextReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExtractFromDocument(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExtractFromDocument: %v", err)
		response.ErrorDetail(c, h.mapError(err, msgSendTextFailed), errorDetail(err))
		return
	}

	response.OK(c, h.newSendTextResp(output))
}

// LangFlowTest godoc
// @Summary     LangFlow router check
// @Tags        LangFlow
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /langflow/test [POST]
func (h *handler) LangFlowTest(c *gin.Context) {
	response.OK(c, response.NewOKResp("Test route is working"))
}
