package http

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the body. An empty body is not an error so that the
// request validation can name the missing field.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return errInvalidBody
	}
	return nil
}

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	if req.Deadline != nil && *req.Deadline != "" {
		t, err := h.dateMath.Parse(*req.Deadline, h.now())
		if err != nil {
			return req, errInvalidDeadline
		}
		req.deadline = &t
	}
	return req, nil
}

// processListReq binds and validates the owner query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errOwnerRequired
	}
	return req, req.validate()
}

// processUpdateReq binds the patch body + URI param. A null deadline clears it.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")

	if len(req.Deadline) > 0 {
		req.deadline.Set = true
		if !req.deadlineNull() {
			var value string
			if err := json.Unmarshal(req.Deadline, &value); err != nil {
				return req, errInvalidDeadline
			}
			if value != "" {
				t, err := h.dateMath.Parse(value, h.now())
				if err != nil {
					return req, errInvalidDeadline
				}
				req.deadline.Value = &t
			}
		}
	}
	return req, nil
}

// processAnalyticsReq binds and validates the analytics query parameters.
func (h *handler) processAnalyticsReq(c *gin.Context) (analyticsReq, error) {
	var req analyticsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errOwnerRequired
	}
	return req, req.validate()
}

// processParseVoiceReq binds and validates the voice request body.
func (h *handler) processParseVoiceReq(c *gin.Context) (parseVoiceReq, error) {
	var req parseVoiceReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	if req.Today != nil && *req.Today != "" {
		t, err := h.dateMath.Parse(*req.Today, h.now())
		if err != nil {
			return req, errInvalidToday
		}
		req.today = &t
	}
	return req, nil
}

// processSendTextReq binds and validates the LangFlow request body.
func (h *handler) processSendTextReq(c *gin.Context) (sendTextReq, error) {
	var req sendTextReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	return req, req.validate()
}
