package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/NascpHisCommunity/Nascap-website/models"
	"github.com/NascpHisCommunity/Nascap-website/services"
	"github.com/NascpHisCommunity/Nascap-website/userctx"
)

// recordedView captures one Record call made by the middleware
type recordedView struct {
	action    models.AuditAction
	userID    *int64
	ipAddress string
	path      string
	userAgent string
}

// stubRecorder is a minimal AuditService standing in for the real one
type stubRecorder struct {
	views     []recordedView
	recordErr error
}

func (s *stubRecorder) Record(ctx context.Context, action models.AuditAction, userID *int64, ip, path, userAgent string, additional map[string]any) (*models.AuditLog, error) {
	if s.recordErr != nil {
		return nil, s.recordErr
	}
	s.views = append(s.views, recordedView{
		action:    action,
		userID:    userID,
		ipAddress: ip,
		path:      path,
		userAgent: userAgent,
	})
	return &models.AuditLog{}, nil
}

func (s *stubRecorder) RecordAuthEvent(ctx context.Context, event services.AuthEvent) (*models.AuditLog, error) {
	return &models.AuditLog{}, nil
}

func (s *stubRecorder) RecentEntries(ctx context.Context, limit int) ([]models.AuditLog, error) {
	return nil, nil
}

func (s *stubRecorder) Summarize(ctx context.Context) (*models.AuditSummary, error) {
	return nil, nil
}

func serveThroughPageViews(t *testing.T, recorder *stubRecorder, req *http.Request, handler http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	mw := PageViews(recorder, zerolog.Nop())
	rr := httptest.NewRecorder()
	mw(handler).ServeHTTP(rr, req)
	return rr
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

func TestPageViewsRecordsGetRequests(t *testing.T) {
	recorder := &stubRecorder{}
	req := httptest.NewRequest(http.MethodGet, "/news/budget-2026", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.RemoteAddr = "203.0.113.9:54321"

	rr := serveThroughPageViews(t, recorder, req, okHandler)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, recorder.views, 1)

	view := recorder.views[0]
	assert.Equal(t, models.ActionPageView, view.action)
	assert.Equal(t, "/news/budget-2026", view.path)
	assert.Equal(t, "203.0.113.9", view.ipAddress)
	assert.Equal(t, "Mozilla/5.0", view.userAgent)
	assert.Nil(t, view.userID)
}

func TestPageViewsAttachesSignedInUser(t *testing.T) {
	recorder := &stubRecorder{}
	req := httptest.NewRequest(http.MethodGet, "/admin/contents", nil)
	ctx := userctx.SetCurrentUser(req.Context(), userctx.CurrentUser{ID: 7, Username: "editor", Role: models.RoleEditor})
	req = req.WithContext(ctx)

	serveThroughPageViews(t, recorder, req, okHandler)

	assert.Len(t, recorder.views, 1)
	if assert.NotNil(t, recorder.views[0].userID) {
		assert.Equal(t, int64(7), *recorder.views[0].userID)
	}
}

func TestPageViewsSkipsStaticAssets(t *testing.T) {
	recorder := &stubRecorder{}
	req := httptest.NewRequest(http.MethodGet, "/static/css/site.css", nil)

	rr := serveThroughPageViews(t, recorder, req, okHandler)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, recorder.views)
}

func TestPageViewsSkipsNonGetRequests(t *testing.T) {
	recorder := &stubRecorder{}
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodHead} {
		req := httptest.NewRequest(method, "/admin/contents", nil)
		serveThroughPageViews(t, recorder, req, okHandler)
	}

	assert.Empty(t, recorder.views)
}

func TestPageViewsRecordsRegardlessOfStatus(t *testing.T) {
	recorder := &stubRecorder{}
	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)

	rr := serveThroughPageViews(t, recorder, req, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Len(t, recorder.views, 1)
	assert.Equal(t, "/no-such-page", recorder.views[0].path)
}

func TestPageViewsSwallowsRecorderFailure(t *testing.T) {
	recorder := &stubRecorder{recordErr: errors.New("store unavailable")}
	req := httptest.NewRequest(http.MethodGet, "/news", nil)

	rr := serveThroughPageViews(t, recorder, req, okHandler)

	// The page must come back intact even when auditing is down
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		expected   string
	}{
		{name: "X-Forwarded-For wins", forwarded: "203.0.113.1, 10.0.0.1", realIP: "203.0.113.2", remoteAddr: "10.0.0.2:80", expected: "203.0.113.1"},
		{name: "X-Real-IP next", realIP: "203.0.113.2", remoteAddr: "10.0.0.2:80", expected: "203.0.113.2"},
		{name: "RemoteAddr strips port", remoteAddr: "203.0.113.3:54321", expected: "203.0.113.3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if tc.realIP != "" {
				req.Header.Set("X-Real-IP", tc.realIP)
			}
			req.RemoteAddr = tc.remoteAddr

			assert.Equal(t, tc.expected, ClientIP(req))
		})
	}
}
