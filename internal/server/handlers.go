package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/depositclaim/internal/claim"
	"github.com/dshills/depositclaim/internal/deadline"
	"github.com/dshills/depositclaim/internal/letter"
	"github.com/dshills/depositclaim/internal/llm"
	"github.com/dshills/depositclaim/internal/mail"
	"github.com/dshills/depositclaim/internal/statelaw"
	"github.com/dshills/depositclaim/internal/store"
)

// maxBodyBytes caps request bodies; letters and facts are small.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error   string             `json:"error"`
	Details []claim.FieldError `json:"details,omitempty"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// generateRequest picks the optional template override out of the same body
// that carries the case facts.
type generateRequest struct {
	Template string `json:"template,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "reading request body"})
		return
	}

	facts, err := claim.Parse(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if fieldErrs := claim.Validate(facts); len(fieldErrs) > 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "input data validation failed",
			Details: fieldErrs,
		})
		return
	}

	var tmplReq generateRequest
	_ = json.Unmarshal(body, &tmplReq) // body already parsed once; template is optional
	var override *letter.Variant
	if tmplReq.Template != "" {
		v, err := letter.ParseVariant(tmplReq.Template)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		override = &v
	}

	today := h.now().UTC().Truncate(24 * time.Hour)

	// Optional LLM path; the deterministic pipeline is the guaranteed
	// fallback on any provider failure.
	if h.provider != nil && override == nil {
		if text, err := llm.Draft(r.Context(), h.provider, facts, today); err == nil {
			writeText(w, text)
			return
		} else {
			h.logger.WarnContext(r.Context(), "LLM draft failed, using template", "error", err)
		}
	}

	ltr, err := h.selector.Generate(facts, today, override)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "letter generation failed", "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("X-Letter-Variant", string(ltr.Variant))
	writeText(w, ltr.Text)
}

type emailRequest struct {
	To            string `json:"to"`
	Subject       string `json:"subject"`
	LetterContent string `json:"letter_content"`
	TenantName    string `json:"tenant_name"`
}

func (h *Handler) handleEmail(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.To == "" || req.LetterContent == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "to and letter_content are required"})
		return
	}
	subject := req.Subject
	if subject == "" {
		subject = "Security Deposit Return Demand Letter"
	}

	msg := mail.Message{
		To:      req.To,
		Subject: subject,
		Text:    req.LetterContent,
		HTML:    emailHTML(req.TenantName, req.LetterContent),
	}
	if err := h.sender.Send(r.Context(), msg); err != nil {
		h.logger.ErrorContext(r.Context(), "email send failed", "to", req.To, "error", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "failed to send email"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type setupReminderRequest struct {
	TenantName    string `json:"tenant_name"`
	TenantEmail   string `json:"tenant_email"`
	LandlordEmail string `json:"landlord_email,omitempty"`
	AmountCents   int64  `json:"amount_cents"`
	State         string `json:"state"`
	MoveOutDate   string `json:"move_out_date"`
}

type setupReminderResponse struct {
	ClaimID  string `json:"claim_id"`
	Deadline string `json:"deadline"`
}

func (h *Handler) handleSetupReminder(w http.ResponseWriter, r *http.Request) {
	var req setupReminderRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.TenantEmail == "" || req.MoveOutDate == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "tenant_email and move_out_date are required"})
		return
	}
	moveOut, err := time.Parse(claim.DateLayout, req.MoveOutDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid move_out_date %q, want YYYY-MM-DD", req.MoveOutDate)})
		return
	}

	rule, _ := statelaw.Lookup(req.State)
	due := deadline.Compute(moveOut, rule.DeadlineDays, rule.Unit)

	c := store.Claim{
		ID:            uuid.NewString(),
		TenantName:    req.TenantName,
		TenantEmail:   req.TenantEmail,
		LandlordEmail: req.LandlordEmail,
		AmountCents:   req.AmountCents,
		StateCode:     req.State,
		Deadline:      due,
		CreatedAt:     h.now().UTC(),
		ReminderOptIn: true,
	}
	if err := h.store.Put(r.Context(), c); err != nil {
		h.logger.ErrorContext(r.Context(), "storing claim failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to set up reminders"})
		return
	}

	writeJSON(w, http.StatusCreated, setupReminderResponse{
		ClaimID:  c.ID,
		Deadline: due.Format(claim.DateLayout),
	})
}

func (h *Handler) handleRunReminders(w http.ResponseWriter, r *http.Request) {
	today := h.now().UTC().Truncate(24 * time.Hour)
	res, err := h.sweeper().Sweep(r.Context(), today)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "reminder sweep failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to check reminders"})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func emailHTML(tenantName, letterContent string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
<h2>Security Deposit Return Demand Letter</h2>
<p>This is a formal demand letter from %s regarding the return of a security deposit.</p>
<pre style="white-space: pre-wrap; font-family: inherit; background-color: #f9f9f9; padding: 20px; border-left: 4px solid #007bff;">%s</pre>
</div>`, tenantName, letterContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, text)
}
