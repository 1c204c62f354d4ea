package service

import (
	"github.com/MKhiriev/go-study-mate/internal/adapter"
)

type ClientServices struct {
	AuthService      ClientAuthService
	StudyPlanService ClientStudyPlanService
	AppInfoService   ClientAppInfoService
}

func NewClientServices(serverAdapter adapter.ServerAdapter) *ClientServices {
	return &ClientServices{
		AuthService:      NewClientAuthService(serverAdapter),
		StudyPlanService: NewClientStudyPlanService(serverAdapter),
		AppInfoService:   NewClientAppInfoService(serverAdapter),
	}
}
