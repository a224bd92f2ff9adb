package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/termfolio/internal/auth"
	"github.com/vovakirdan/termfolio/internal/content"
	"github.com/vovakirdan/termfolio/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	srv   *Server
	store *storage.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	seed, err := content.LoadSeed("")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SeedIfEmpty(seed); err != nil {
		t.Fatal(err)
	}

	authn := auth.New(auth.Credentials{Username: "admin", Password: "admin"}, time.Hour)
	srv := New(DefaultConfig(), store, authn, log.New(io.Discard))
	return &testServer{srv: srv, store: store}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		r = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) login(t *testing.T) string {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": "admin",
		"password": "admin",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body)
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("login response %s: %v", rec.Body, err)
	}
	return resp.Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", rec.Body, err)
	}
	return v
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/api/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestGetPortfolio(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/portfolio", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	p := decode[content.Portfolio](t, rec)
	if p.Profile.Name == "" || len(p.Experience) == 0 || len(p.Skills) == 0 {
		t.Errorf("portfolio = %+v", p)
	}
	if p.Experience[0].ID == 0 {
		t.Error("experience IDs missing")
	}
}

func TestGetScores(t *testing.T) {
	ts := newTestServer(t)
	ts.store.SaveScore("dodge", 7)  //nolint:errcheck // Test setup
	ts.store.SaveScore("dodge", 12) //nolint:errcheck // Test setup

	rec := ts.do(t, http.MethodGet, "/api/scores/dodge?limit=1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	resp := decode[struct {
		Game   string               `json:"game"`
		Scores []storage.ScoreEntry `json:"scores"`
		Stats  storage.GameStats    `json:"stats"`
	}](t, rec)
	if resp.Game != "dodge" || len(resp.Scores) != 1 || resp.Scores[0].Score != 12 {
		t.Errorf("scores response = %+v", resp)
	}
	if resp.Stats.GamesCount != 2 {
		t.Errorf("stats games = %d, want 2", resp.Stats.GamesCount)
	}

	if rec := ts.do(t, http.MethodGet, "/api/scores/dodge?limit=abc", "", nil); rec.Code != http.StatusBadRequest {
		t.Errorf("bad limit status = %d", rec.Code)
	}

	rec = ts.do(t, http.MethodGet, "/api/scores/unknown", "", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"scores":[]`) {
		t.Errorf("empty game response = %d %s", rec.Code, rec.Body)
	}
}

func TestPostContact(t *testing.T) {
	tests := []struct {
		name   string
		body   map[string]string
		status int
		errMsg string
	}{
		{"valid", map[string]string{"name": "Jo", "email": "jo@example.com", "message": "Hello, nice site!"}, http.StatusCreated, ""},
		{"short name", map[string]string{"name": "J", "email": "jo@example.com", "message": "Hello, nice site!"}, http.StatusBadRequest, "Name is required"},
		{"bad email", map[string]string{"name": "Jo", "email": "jo", "message": "Hello, nice site!"}, http.StatusBadRequest, "Invalid email address"},
		{"short message", map[string]string{"name": "Jo", "email": "jo@example.com", "message": "Hi"}, http.StatusBadRequest, "at least 10 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			rec := ts.do(t, http.MethodPost, "/api/contact", "", tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.status, rec.Body)
			}
			if tt.errMsg != "" && !strings.Contains(rec.Body.String(), tt.errMsg) {
				t.Errorf("body = %s, want %q", rec.Body, tt.errMsg)
			}

			msgs, _ := ts.store.ListMessages(0)
			wantStored := 0
			if tt.status == http.StatusCreated {
				wantStored = 1
			}
			if len(msgs) != wantStored {
				t.Errorf("stored messages = %d, want %d", len(msgs), wantStored)
			}
		})
	}
}

func TestAdminRoutesRequireSession(t *testing.T) {
	ts := newTestServer(t)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/admin/session"},
		{http.MethodGet, "/api/admin/profile"},
		{http.MethodPut, "/api/admin/profile"},
		{http.MethodPost, "/api/admin/experience"},
		{http.MethodPut, "/api/admin/education/1"},
		{http.MethodDelete, "/api/admin/skills/1"},
		{http.MethodDelete, "/api/admin/projects/1"},
		{http.MethodGet, "/api/admin/messages"},
		{http.MethodDelete, "/api/admin/messages/1"},
	}

	for _, r := range routes {
		rec := ts.do(t, r.method, r.path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token = %d, want 401", r.method, r.path, rec.Code)
		}
		rec = ts.do(t, r.method, r.path, "forged-token", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s with bad token = %d, want 401", r.method, r.path, rec.Code)
		}
	}

	// Nothing was deleted by the rejected requests
	if _, err := ts.store.GetSkill(1); err != nil {
		t.Errorf("skill 1 gone: %v", err)
	}
}

func TestLoginLogout(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/admin/login", "", map[string]string{"username": "admin", "password": "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad login status = %d", rec.Code)
	}

	rec = ts.do(t, http.MethodPost, "/api/admin/login", "", map[string]string{"username": "admin", "password": "admin"})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d", rec.Code)
	}
	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value == "" || !cookie.HttpOnly {
		t.Fatalf("session cookie = %+v", cookie)
	}

	// The cookie alone authenticates
	req := httptest.NewRequest(http.MethodGet, "/api/admin/session", nil)
	req.AddCookie(cookie)
	cookieRec := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(cookieRec, req)
	if cookieRec.Code != http.StatusOK {
		t.Errorf("cookie session status = %d", cookieRec.Code)
	}

	rec = ts.do(t, http.MethodPost, "/api/admin/logout", cookie.Value, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("logout status = %d", rec.Code)
	}
	if rec := ts.do(t, http.MethodGet, "/api/admin/session", cookie.Value, nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("session after logout = %d, want 401", rec.Code)
	}
}

func TestAdminExperienceCRUD(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	rec := ts.do(t, http.MethodPost, "/api/admin/experience", token, content.Experience{
		Title:   "Go Developer",
		Company: "Acme",
		Tech:    []string{"Go"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d (%s)", rec.Code, rec.Body)
	}
	created := decode[content.Experience](t, rec)
	if created.ID == 0 {
		t.Fatal("created entry has no ID")
	}

	created.Company = "Acme Corp"
	rec = ts.do(t, http.MethodPut, "/api/admin/experience/"+strconv.FormatInt(created.ID, 10), token, created)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d (%s)", rec.Code, rec.Body)
	}
	if got := decode[content.Experience](t, rec); got.Company != "Acme Corp" {
		t.Errorf("updated company = %q", got.Company)
	}

	rec = ts.do(t, http.MethodPost, "/api/admin/experience", token, content.Experience{Title: "No company"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid create status = %d", rec.Code)
	}

	rec = ts.do(t, http.MethodDelete, "/api/admin/experience/"+strconv.FormatInt(created.ID, 10), token, nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", rec.Code)
	}
	rec = ts.do(t, http.MethodDelete, "/api/admin/experience/"+strconv.FormatInt(created.ID, 10), token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
	rec = ts.do(t, http.MethodPut, "/api/admin/experience/abc", token, created)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d", rec.Code)
	}
}

func TestAdminSkillsAndProfile(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	rec := ts.do(t, http.MethodPost, "/api/admin/skills", token, content.Skill{Name: "Go", Category: "language", Level: 150})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("level 150 status = %d", rec.Code)
	}

	rec = ts.do(t, http.MethodPut, "/api/admin/skills/9999", token, content.Skill{Name: "Go", Category: "language", Level: 50})
	if rec.Code != http.StatusNotFound {
		t.Errorf("update missing skill status = %d", rec.Code)
	}

	profile := content.Profile{Name: "Ada", Roles: []string{"engineer"}}
	rec = ts.do(t, http.MethodPut, "/api/admin/profile", token, profile)
	if rec.Code != http.StatusOK {
		t.Fatalf("put profile status = %d (%s)", rec.Code, rec.Body)
	}

	rec = ts.do(t, http.MethodGet, "/api/admin/profile", token, nil)
	if got := decode[content.Profile](t, rec); got.Name != "Ada" {
		t.Errorf("profile name = %q", got.Name)
	}
}

func TestAdminMessages(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	id, err := ts.store.SaveMessage(content.Message{Name: "Jo", Email: "jo@example.com", Body: "Hello there"})
	if err != nil {
		t.Fatal(err)
	}

	rec := ts.do(t, http.MethodGet, "/api/admin/messages", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	if msgs := decode[[]content.Message](t, rec); len(msgs) != 1 || msgs[0].Body != "Hello there" {
		t.Errorf("messages = %+v", msgs)
	}

	rec = ts.do(t, http.MethodDelete, "/api/admin/messages/"+strconv.FormatInt(id, 10), token, nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", rec.Code)
	}
}
