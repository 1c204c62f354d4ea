package tui

import (
	"github.com/MKhiriev/go-study-mate/models"
)

type authDoneMsg struct {
	session models.Session
	err     error
}

type planGeneratedMsg struct {
	req  models.PlanRequest
	plan models.PlanJSON
	err  error
}

type planLoadedMsg struct {
	plan models.StoredPlanResponse
	err  error
}

type chatReplyMsg struct {
	reply string
	err   error
}

type serverVersionMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
