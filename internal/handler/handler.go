/**
* Name: 			handler.go
* Description: 		Gin 프레임워크의 HTTP 핸들러
* Workflow: 		프로필 조회/생성/수정, 프로젝트 필터, 검색, 상위 스킬, 헬스체크
 */
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"MeAPI_Playground/internal/middleware"
	"MeAPI_Playground/internal/models"
	"MeAPI_Playground/internal/portfolio"

	"github.com/gin-gonic/gin"
)

// Handler serves the portfolio endpoints. It holds no per-request state.
type Handler struct {
	svc    *portfolio.Service
	logger *slog.Logger
	now    func() time.Time
}

func New(svc *portfolio.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger, now: time.Now}
}

// GetProfile godoc
// @Summary      프로필 조회 (Get profile)
// @Description  가장 최근에 생성된 프로필 문서 전체를 반환합니다.
// @Tags         Profile
// @Produce      json
// @Success      200 {object} models.Profile
// @Failure      404 {object} handler.MessageResponse "프로필 없음"
// @Failure      500 {object} handler.ErrorResponse "저장소 오류"
// @Router       /profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.svc.Profile(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// CreateProfile godoc
// @Summary      프로필 생성 (Create profile)
// @Description  새 프로필을 저장합니다. 이후 조회는 가장 최근 프로필을 사용합니다.
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Param        request body models.Profile true "프로필 문서"
// @Success      201 {object} models.Profile
// @Failure      400 {object} handler.MessageResponse "필수 필드 누락 또는 잘못된 JSON"
// @Failure      403 {object} handler.MessageResponse "쓰기 비활성화"
// @Failure      409 {object} handler.MessageResponse "이메일 중복"
// @Failure      500 {object} handler.ErrorResponse "저장소 오류"
// @Router       /profile [post]
func (h *Handler) CreateProfile(c *gin.Context) {
	var body models.Profile
	if !decodeBody(c, &body) {
		return
	}

	profile, err := h.svc.CreateProfile(c.Request.Context(), body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// UpdateProfile godoc
// @Summary      프로필 수정 (Update profile)
// @Description  바디에 포함된 최상위 필드만 최신 프로필에 덮어씁니다.
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Param        request body models.ProfilePatch true "변경할 필드"
// @Success      200 {object} models.Profile
// @Failure      400 {object} handler.MessageResponse "잘못된 요청"
// @Failure      403 {object} handler.MessageResponse "쓰기 비활성화"
// @Failure      404 {object} handler.MessageResponse "프로필 없음"
// @Failure      409 {object} handler.MessageResponse "이메일 중복"
// @Failure      500 {object} handler.ErrorResponse "저장소 오류"
// @Router       /profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var patch models.ProfilePatch
	if !decodeBody(c, &patch) {
		return
	}

	profile, err := h.svc.UpdateProfile(c.Request.Context(), patch)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListProjects godoc
// @Summary      프로젝트 목록 (List projects)
// @Description  skill 파라미터가 있으면 해당 문자열을 포함하는 스킬(대소문자 무시)을 가진 프로젝트만 반환합니다.
// @Tags         Query
// @Produce      json
// @Param        skill query string false "스킬 토큰 (부분 일치)"
// @Success      200 {object} handler.ProjectsResponse
// @Failure      404 {object} handler.MessageResponse "프로필 없음"
// @Failure      500 {object} handler.ErrorResponse "저장소 오류"
// @Router       /projects [get]
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.svc.Projects(c.Request.Context(), c.Query("skill"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ProjectsResponse{Projects: projects})
}

// Search godoc
// @Summary      통합 검색 (Search)
// @Description  이름/이메일/소개, 프로젝트(제목, 설명, 스킬), 스킬 목록에서 부분 일치 검색을 합니다.
// @Tags         Query
// @Produce      json
// @Param        q query string true "검색어"
// @Success      200 {object} portfolio.SearchResult
// @Failure      400 {object} handler.MessageResponse "q 누락"
// @Failure      404 {object} handler.MessageResponse "프로필 없음"
// @Failure      500 {object} handler.ErrorResponse "저장소 오류"
// @Router       /search [get]
func (h *Handler) Search(c *gin.Context) {
	result, err := h.svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// TopSkills godoc
// @Summary      상위 스킬 (Top skills)
// @Description  프로필과 모든 프로젝트의 스킬을 정규화해 빈도순 상위 10개를 반환합니다.
// @Tags         Query
// @Produce      json
// @Success      200 {object} handler.TopSkillsResponse
// @Failure      404 {object} handler.MessageResponse "프로필 없음"
// @Failure      500 {object} handler.ErrorResponse "저장소 오류"
// @Router       /skills/top [get]
func (h *Handler) TopSkills(c *gin.Context) {
	skills, err := h.svc.TopSkills(c.Request.Context(), portfolio.DefaultTopSkillsLimit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, TopSkillsResponse{TopSkills: skills})
}

// Health godoc
// @Summary      헬스체크 (Health)
// @Tags         System
// @Produce      json
// @Success      200 {object} handler.HealthResponse
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Message:   "Portfolio API is running",
	})
}

// binding 검증은 Normalize 이후에 해야 하므로 ShouldBindJSON 대신 직접 디코딩
func decodeBody(c *gin.Context, v any) bool {
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request"})
		return false
	}
	if err := json.Unmarshal(rawData, v); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "JSON parsing error: " + err.Error()})
		return false
	}
	return true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, portfolio.ErrNotFound):
		c.JSON(http.StatusNotFound, MessageResponse{Message: "Profile not found"})
	case errors.Is(err, portfolio.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	case errors.Is(err, portfolio.ErrEmailExists):
		c.JSON(http.StatusConflict, MessageResponse{Message: "Email already exists"})
	default:
		h.logger.Error("request failed",
			"path", c.Request.URL.Path,
			"request_id", c.GetString(middleware.RequestIDKey),
			"error", err)
		c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
