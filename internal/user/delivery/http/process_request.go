package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return errInvalidBody
	}
	return nil
}

func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processGmailReq(c *gin.Context) (gmailReq, error) {
	var req gmailReq
	if err := bindJSON(c, &req); err != nil {
		return req, err
	}
	return req, req.validate()
}
