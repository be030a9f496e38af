package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smartbizsa/backend/internal/advisory/speech"
	"go.uber.org/zap"
)

type chatRequest struct {
	Message string `json:"message"`
	Context string `json:"context"`
}

type voiceChatRequest struct {
	Message     string `json:"message"`
	Context     string `json:"context"`
	EnableVoice *bool  `json:"enable_voice"`
	VoiceID     string `json:"voice_id"`
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	_ = c.ShouldBindJSON(&req)
	if strings.TrimSpace(req.Message) == "" {
		AbortWithError(c, badRequest("Message required"))
		return
	}

	response := s.chatSvc.Respond(c.Request.Context(), req.Message, req.Context)
	c.JSON(http.StatusOK, gin.H{"response": response})
}

func (s *Server) handleChatVoice(c *gin.Context) {
	var req voiceChatRequest
	_ = c.ShouldBindJSON(&req)
	if strings.TrimSpace(req.Message) == "" {
		AbortWithError(c, badRequest("Message required"))
		return
	}

	response := s.chatSvc.Respond(c.Request.Context(), req.Message, req.Context)

	enableVoice := req.EnableVoice == nil || *req.EnableVoice
	if !enableVoice {
		c.JSON(http.StatusOK, gin.H{"response": response})
		return
	}

	audio, err := s.speechSvc.Synthesize(c.Request.Context(), response, req.VoiceID)
	if err != nil {
		s.log.Warn("voice synthesis unavailable, returning text only", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"response":    response,
			"voice_error": err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", `inline; filename="response.mp3"`)
	c.Data(http.StatusOK, "audio/mpeg", audio)
}

func (s *Server) handleChatVoices(c *gin.Context) {
	voices := s.speechSvc.Voices(c.Request.Context())
	if voices == nil {
		voices = []speech.Voice{}
	}
	c.JSON(http.StatusOK, gin.H{"voices": voices})
}

type smartSQLRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleSmartSQL(c *gin.Context) {
	var req smartSQLRequest
	_ = c.ShouldBindJSON(&req)
	if strings.TrimSpace(req.Query) == "" {
		AbortWithError(c, badRequest("Query required"))
		return
	}

	result, err := s.smartsqlSvc.Execute(c.Request.Context(), req.Query)
	if err != nil {
		AbortWithError(c, backendFailure(err))
		return
	}
	c.JSON(http.StatusOK, result)
}
