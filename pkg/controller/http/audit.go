package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/vantis-uk/vantis/pkg/domain/model"
	"github.com/vantis-uk/vantis/pkg/domain/model/audit"
	"github.com/vantis-uk/vantis/pkg/domain/types"
	"github.com/vantis-uk/vantis/pkg/usecase"
)

type questionsResponse struct {
	Questions []audit.Question `json:"questions"`
	MaxScore  int              `json:"max_score"`
}

type answerRequest struct {
	Value *bool `json:"value"`
}

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

type noticesResponse struct {
	Notices []model.Notice `json:"notices"`
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(chi.URLParam(r, "sessionID"))
}

func questionsHandler(uc *usecase.AuditUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, questionsResponse{
			Questions: uc.Questions(),
			MaxScore:  uc.MaxScore(),
		})
	}
}

func startSessionHandler(uc *usecase.AuditUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := uc.StartSession(r.Context())
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusCreated, view)
	}
}

func getSessionHandler(uc *usecase.AuditUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := uc.GetSession(r.Context(), sessionID(r))
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, view)
	}
}

func endSessionHandler(uc *usecase.AuditUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := uc.EndSession(r.Context(), sessionID(r)); err != nil {
			writeError(r.Context(), w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func answerHandler(uc *usecase.AuditUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req answerRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}
		if req.Value == nil {
			writeError(ctx, w, goerr.Wrap(errBadRequest, "value is required"))
			return
		}

		ev := usecase.AnswerEvent{
			QuestionID: types.QuestionID(chi.URLParam(r, "questionID")),
			Value:      *req.Value,
		}
		view, err := uc.Dispatch(ctx, sessionID(r), ev)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, view)
	}
}

// submitHandler blocks for the calculating delay before responding with the result
func submitHandler(uc *usecase.AuditUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req submitRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}

		ev := usecase.SubmitEvent{Contact: audit.Contact{
			Name:    req.Name,
			Email:   req.Email,
			Company: req.Company,
		}}
		view, err := uc.Dispatch(ctx, sessionID(r), ev)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, view)
	}
}

func resetHandler(uc *usecase.AuditUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := uc.Dispatch(r.Context(), sessionID(r), usecase.ResetEvent{})
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, view)
	}
}

func noticesHandler(uc *usecase.AuditUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notices, err := uc.Notices(r.Context(), sessionID(r))
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}
		if notices == nil {
			notices = []model.Notice{}
		}
		writeJSON(r.Context(), w, http.StatusOK, noticesResponse{Notices: notices})
	}
}
