package controllers

import (
	"net/http"

	"github.com/agrobert/agrobert-backend/api/responses"
	"github.com/agrobert/agrobert-backend/api/validators"
	"github.com/agrobert/agrobert-backend/internal/chatbot"
	pkgerrors "github.com/agrobert/agrobert-backend/pkg/errors"
	"github.com/agrobert/agrobert-backend/pkg/logger"
)

// ChatRequest is the assistant query body. Lang is optional and defaults to
// English.
type ChatRequest struct {
	Query string `json:"query"`
	Lang  string `json:"lang"`
}

// ChatResponse carries the assistant's answer.
type ChatResponse struct {
	Response string `json:"response"`
}

// Chat answers assistant queries. The router never fails, so this endpoint
// always responds 200 once the body parses.
func Chat(router *chatbot.Router, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "chat router unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body ChatRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		answer := router.Respond(r.Context(), body.Query, chatbot.ParseLanguage(body.Lang))
		responses.WriteSuccess(w, ChatResponse{Response: answer})
	}
}

// News returns the headlines for the requested language.
func News(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := chatbot.ParseLanguage(validators.QueryString(r, "lang", "en"))
		responses.WriteSuccess(w, chatbot.News(lang))
	}
}
