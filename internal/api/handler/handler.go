package handler

import (
	"go.uber.org/zap"

	"jandarpan/backend/internal/grievance"
)

// Handler holds the grievance service used by every endpoint.
type Handler struct {
	Grievances *grievance.Service
	Logger     *zap.Logger
}

func NewHandler(svc *grievance.Service, logger *zap.Logger) *Handler {
	return &Handler{Grievances: svc, Logger: logger}
}
