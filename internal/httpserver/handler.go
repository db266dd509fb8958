package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sant0-9/chatbotely/internal/pipeline"
	"github.com/sant0-9/chatbotely/internal/transcript"
)

const ServiceName = "chatbotely"

type respondRequest struct {
	Text      string `json:"text"`
	SessionID string `json:"session_id"`
}

type sentenceResponse struct {
	Text     string `json:"text"`
	Intent   string `json:"intent"`
	Response string `json:"response"`
}

type respondResponse struct {
	Reply     string             `json:"reply"`
	SessionID string             `json:"session_id"`
	Sentences []sentenceResponse `json:"sentences"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (srv *HTTPServer) mapHandlers() {
	srv.gin.Use(gin.Recovery())

	srv.gin.GET("/health", srv.healthCheck)

	api := srv.gin.Group("/api/v1")
	if srv.limiter != nil {
		api.Use(srv.rateLimit)
	}
	api.POST("/respond", srv.respond)
}

func (srv *HTTPServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": ServiceName,
	})
}

func (srv *HTTPServer) rateLimit(c *gin.Context) {
	if err := srv.limiter.Allow(c.ClientIP()); err != nil {
		srv.l.Warn("rate limited", zap.String("client", c.ClientIP()))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResponse{Error: err.Error()})
		return
	}
	c.Next()
}

// respond answers one user message. Empty text gets 204 and no body.
func (srv *HTTPServer) respond(c *gin.Context) {
	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	res, err := srv.responder.Process(ctx, req.Text)
	if errors.Is(err, pipeline.ErrEmptyInput) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		srv.l.Error("respond failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	if req.SessionID == "" {
		req.SessionID = transcript.NewSessionID()
	}

	out := respondResponse{
		Reply:     res.Reply,
		SessionID: req.SessionID,
		Sentences: make([]sentenceResponse, len(res.Sentences)),
	}
	intents := make([]string, len(res.Sentences))
	for i, s := range res.Sentences {
		out.Sentences[i] = sentenceResponse{Text: s.Text, Intent: s.Intent.String(), Response: s.Response}
		intents[i] = s.Intent.String()
	}

	if srv.recorder != nil {
		turn := transcript.Turn{SessionID: req.SessionID, Input: req.Text, Reply: res.Reply, Intents: intents}
		if err := srv.recorder.Append(ctx, turn); err != nil {
			srv.l.Warn("failed to record turn", zap.String("session_id", req.SessionID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, out)
}
