package get_agenda

import (
	getAgenda "github.com/agendei-app/agendei-service/internal/usecase/get_agenda"
)

// DayResponse is one day of the visible scheduling window.
type DayResponse struct {
	Date    string `json:"date"`
	Blocked bool   `json:"blocked"`
}

// SlotResponse is one hour slot of the requested date.
type SlotResponse struct {
	Hour     int    `json:"hour"`
	Disabled bool   `json:"disabled"`
	Reason   string `json:"reason,omitempty"`
}

// AgendaResponse is the HTTP agenda view.
type AgendaResponse struct {
	Date  string         `json:"date"`
	Days  []DayResponse  `json:"days"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *getAgenda.Response) *AgendaResponse {
	out := &AgendaResponse{
		Date:  resp.DateISO,
		Days:  make([]DayResponse, 0, len(resp.Days)),
		Slots: make([]SlotResponse, 0, len(resp.Slots)),
	}
	for _, d := range resp.Days {
		out.Days = append(out.Days, DayResponse{Date: d.DateISO, Blocked: d.Blocked})
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{Hour: s.Hour, Disabled: s.Disabled, Reason: string(s.Reason)})
	}
	return out
}
