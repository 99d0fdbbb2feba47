package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/depositclaim/internal/llm"
	"github.com/dshills/depositclaim/internal/mail"
	"github.com/dshills/depositclaim/internal/store"
)

// capturingSender records messages instead of sending them.
type capturingSender struct {
	sent []mail.Message
}

func (s *capturingSender) Send(_ context.Context, msg mail.Message) error {
	s.sent = append(s.sent, msg)
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestHandler(t *testing.T, opts ...Option) (*Handler, *store.Memory, *capturingSender) {
	t.Helper()
	st := store.NewMemory()
	sender := &capturingSender{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	base := []Option{WithClock(fixedClock(time.Date(2024, time.January, 25, 12, 0, 0, 0, time.UTC)))}
	h := New(logger, st, sender, append(base, opts...)...)
	return h, st, sender
}

const validGenerateBody = `{
	"state": "CA",
	"move_out_date": "2024-01-01",
	"deposit_date": "2023-01-01",
	"deposit_amount_cents": 150000,
	"tenant_name": "Jordan Rivera",
	"tenant_email": "jordan@example.com",
	"rental_address": "123 Main Street, Apt 4B, Oakland, CA 94601",
	"forwarding_address": "456 Oak Avenue, Berkeley, CA 94702",
	"landlord_info": "Pat Casey, 789 Elm Street, Oakland, CA 94601"
}`

func TestHandleGenerate_DeterministicLetter(t *testing.T) {
	h, _, _ := newTestHandler(t)
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/generate", "application/json", strings.NewReader(validGenerateBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "standard", resp.Header.Get("X-Letter-Variant"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(body)
	assert.Contains(t, text, "Demand for Return of Security Deposit")
	assert.Contains(t, text, "Cal. Civ. Code §1950.5")
	assert.Contains(t, text, "$1500.00")
}

func TestHandleGenerate_ValidationFailure(t *testing.T) {
	h, _, _ := newTestHandler(t)
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/generate", "application/json", strings.NewReader(`{"state": "CA"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var er errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&er))
	assert.Equal(t, "input data validation failed", er.Error)
	assert.NotEmpty(t, er.Details)
}

func TestHandleGenerate_TemplateOverride(t *testing.T) {
	h, _, _ := newTestHandler(t)
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	body := strings.Replace(validGenerateBody, "{", `{"template": "firm",`, 1)
	resp, err := http.Post(srv.URL+"/api/generate", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "firm", resp.Header.Get("X-Letter-Variant"))

	text, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(text), "FINAL DEMAND FOR RETURN OF SECURITY DEPOSIT")
}

func TestHandleGenerate_LLMFailureFallsBackToTemplate(t *testing.T) {
	failing := providerFunc(func(ctx context.Context, req *llm.Request) (*llm.Response, error) {
		return nil, context.DeadlineExceeded
	})
	h, _, _ := newTestHandler(t, WithProvider(failing))
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/generate", "application/json", strings.NewReader(validGenerateBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	text, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(text), "LEGAL DEMAND")
}

func TestHandleGenerate_LLMDraftUsedWhenAvailable(t *testing.T) {
	drafting := providerFunc(func(ctx context.Context, req *llm.Request) (*llm.Response, error) {
		return &llm.Response{Content: "DRAFTED LETTER", Model: "openai:test"}, nil
	})
	h, _, _ := newTestHandler(t, WithProvider(drafting))
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/generate", "application/json", strings.NewReader(validGenerateBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "DRAFTED LETTER", string(text))
}

func TestHandleEmail(t *testing.T) {
	h, _, sender := newTestHandler(t)
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	body := `{"to": "landlord@example.com", "letter_content": "Dear Landlord,", "tenant_name": "Jordan"}`
	resp, err := http.Post(srv.URL+"/api/email", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "landlord@example.com", sender.sent[0].To)
	assert.Contains(t, sender.sent[0].HTML, "Dear Landlord,")
}

func TestHandleEmail_MissingFields(t *testing.T) {
	h, _, _ := newTestHandler(t)
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/email", "application/json", strings.NewReader(`{"to": "x@example.com"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleSetupReminder(t *testing.T) {
	h, st, _ := newTestHandler(t)
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	body := `{"tenant_name": "Jordan", "tenant_email": "jordan@example.com", "amount_cents": 150000, "state": "CA", "move_out_date": "2024-01-01"}`
	resp, err := http.Post(srv.URL+"/api/reminders", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var sr setupReminderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sr))
	assert.NotEmpty(t, sr.ClaimID)
	// CA: 21 calendar days from 2024-01-01.
	assert.Equal(t, "2024-01-22", sr.Deadline)

	c, err := st.Get(context.Background(), sr.ClaimID)
	require.NoError(t, err)
	assert.True(t, c.ReminderOptIn)
	assert.Equal(t, "jordan@example.com", c.TenantEmail)
}

func TestHandleRunReminders(t *testing.T) {
	h, st, sender := newTestHandler(t)
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	// Clock is 2024-01-25; a claim due 2024-01-28 hits the T-3 reminder.
	require.NoError(t, st.Put(context.Background(), store.Claim{
		ID:            "c1",
		TenantEmail:   "jordan@example.com",
		AmountCents:   150000,
		StateCode:     "CA",
		Deadline:      time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC),
		ReminderOptIn: true,
	}))

	resp, err := http.Get(srv.URL + "/api/reminders/run")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var res struct {
		Checked int `json:"claims_checked"`
		Sent    int `json:"reminders_sent"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, 1, res.Checked)
	assert.Equal(t, 1, res.Sent)
	require.Len(t, sender.sent, 1)
}

func TestHandleHealth(t *testing.T) {
	h, _, _ := newTestHandler(t)
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// providerFunc adapts a function to the llm.Provider interface for tests.
type providerFunc func(ctx context.Context, req *llm.Request) (*llm.Response, error)

func (f providerFunc) Complete(ctx context.Context, req *llm.Request) (*llm.Response, error) {
	return f(ctx, req)
}
