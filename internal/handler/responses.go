package handler

import (
	"MeAPI_Playground/internal/models"
	"MeAPI_Playground/internal/portfolio"
)

// 4xx 응답 바디
type MessageResponse struct {
	Message string `json:"message" example:"Profile not found"`
}

// 5xx 응답 바디
type ErrorResponse struct {
	Error string `json:"error" example:"profile store unavailable: database is locked"`
}

type ProjectsResponse struct {
	Projects []models.Project `json:"projects"`
}

type TopSkillsResponse struct {
	TopSkills []portfolio.SkillCount `json:"topSkills"`
}

type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp string `json:"timestamp" example:"2024-05-01T12:00:00Z"`
	Message   string `json:"message" example:"Portfolio API is running"`
}
