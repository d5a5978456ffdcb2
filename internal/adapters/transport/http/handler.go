package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vmalgo/researchlab/internal/adapters/transport/http/dto"
	"github.com/vmalgo/researchlab/internal/adapters/transport/http/middleware"
	"github.com/vmalgo/researchlab/internal/app/auth/service"
	authErrors "github.com/vmalgo/researchlab/internal/domain/auth/errors"
	authModel "github.com/vmalgo/researchlab/internal/domain/auth/model"
	researchModel "github.com/vmalgo/researchlab/internal/domain/research/model"
	researchRepo "github.com/vmalgo/researchlab/internal/domain/research/repo"
)

type Handler struct {
	svc        service.Service
	strategies researchRepo.StrategyRepo
	log        *zap.Logger
}

func NewHandler(svc service.Service, strategies researchRepo.StrategyRepo, log *zap.Logger) *Handler {
	return &Handler{svc: svc, strategies: strategies, log: log}
}

// Routes mounts the public auth endpoints and the guarded API surface.
func (h *Handler) Routes(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	v1.GET("/health", h.health)

	auth := v1.Group("/auth")
	auth.POST("/register", h.register)
	auth.POST("/login", h.login)
	auth.POST("/refresh", h.refresh)
	auth.POST("/logout", h.logout)

	protected := v1.Group("")
	protected.Use(middleware.Auth(h.svc))
	protected.GET("/me", h.me)
	protected.GET("/strategy/strategies", h.listStrategies)
	protected.POST("/strategy/create-strategy", h.createStrategy)
	protected.DELETE("/strategy/strategies/:id", h.deleteStrategy)
}

func (h *Handler) register(c *gin.Context) {
	var body dto.RegisterDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.svc.Register(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.log.Info("account registered", zap.Int64("user_id", pair.User.ID))
	c.JSON(http.StatusOK, tokenResponse(pair))
}

func (h *Handler) login(c *gin.Context) {
	var body dto.LoginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.svc.Login(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse(pair))
}

func (h *Handler) refresh(c *gin.Context) {
	var body dto.RefreshDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.svc.Refresh(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse(pair))
}

func (h *Handler) logout(c *gin.Context) {
	var body dto.LogoutDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.Logout(c.Request.Context(), body); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *Handler) me(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	c.JSON(http.StatusOK, userView(user))
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
}

func (h *Handler) createStrategy(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	var body dto.CreateStrategyDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := researchModel.Strategy{
		UserID:          user.ID,
		Name:            body.Name,
		Description:     body.Description,
		EntryConditions: rawJSON(body.EntryConditions),
		ExitConditions:  rawJSON(body.ExitConditions),
		PositionSizing:  rawJSON(body.PositionSizing),
	}

	created, err := h.strategies.CreateStrategy(c.Request.Context(), s)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"strategy_id": created.ID,
		"message":     "Strategy created successfully. Awaiting approval.",
	})
}

func (h *Handler) listStrategies(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	list, err := h.strategies.ListStrategiesByUser(c.Request.Context(), user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	out := make([]gin.H, 0, len(list))
	for _, s := range list {
		out = append(out, gin.H{
			"id":          s.ID,
			"name":        s.Name,
			"description": s.Description,
			"is_active":   s.IsActive,
			"is_approved": s.IsApproved,
			"created_at":  s.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "strategies": out})
}

func (h *Handler) deleteStrategy(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid strategy id"})
		return
	}

	if err := h.strategies.DeleteStrategy(c.Request.Context(), id, user.ID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "strategy deleted"})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case authErrors.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case authErrors.IsAlreadyExists(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "user already exists"})
	case authErrors.IsInvalidCredentials(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case authErrors.IsInvalidToken(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	case authErrors.IsAccountInactive(err):
		c.JSON(http.StatusForbidden, gin.H{"error": "account inactive"})
	case authErrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case authErrors.IsUnavailable(err):
		h.log.Error("storage unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable"})
	default:
		h.log.Error("internal error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func tokenResponse(pair authModel.TokenPair) dto.TokenResponse {
	return dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
		User:         userView(pair.User),
	}
}

func userView(u authModel.User) dto.UserView {
	return dto.UserView{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		FullName: u.FullName,
	}
}

func rawJSON(v interface{}) json.RawMessage {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
