package http

import (
	"net/http"

	"github.com/vantis-uk/vantis/pkg/domain/model"
	"github.com/vantis-uk/vantis/pkg/domain/model/audit"
	"github.com/vantis-uk/vantis/pkg/domain/types"
	"github.com/vantis-uk/vantis/pkg/usecase"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

type contactResponse struct {
	LeadID  model.LeadID        `json:"lead_id"`
	Outcome types.SubmitOutcome `json:"outcome"`
	Message string              `json:"message"`
}

// contactHandler delivers an enquiry and reports the outcome. Failed deliveries answer
// 502 so clients can tell them apart without reading the body.
func contactHandler(uc *usecase.ContactUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req contactRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}

		report, err := uc.Submit(ctx, usecase.ContactRequest{
			Contact: audit.Contact{Name: req.Name, Email: req.Email, Company: req.Company},
			Message: req.Message,
		})
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		status := http.StatusOK
		if !report.Outcome.IsSuccess() {
			status = http.StatusBadGateway
		}
		writeJSON(ctx, w, status, contactResponse{
			LeadID:  report.Lead.ID,
			Outcome: report.Outcome,
			Message: model.NoticeMessage(report.Outcome),
		})
	}
}
