package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"todo_manager/internal/models"
	"todo_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenID    int
	genTokenErr   error
	parseID       int
	parseErr      error
	getUserErr    error

	lastSignUpUsername string
	lastSignUpEmail    string
	lastGenUsername    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, email, _ string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpEmail = email
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(_ context.Context, username, _ string) (string, int, error) {
	m.lastGenUsername = username
	return m.genTokenToken, m.genTokenID, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}
func (m *mockAuth) GetUser(_ context.Context, id int) (*models.User, error) {
	if m.getUserErr != nil {
		return nil, m.getUserErr
	}
	return &models.User{ID: id, Username: "alice"}, nil
}

type mockTasks struct {
	tasks []models.Task
	task  models.Task
	err   error
	n     int

	lastUserID  int
	lastTaskID  int
	lastContent string
	lastDueDate string
	calls       int
}

func (m *mockTasks) ListTasks(_ context.Context, userID int) ([]models.Task, error) {
	m.lastUserID = userID
	return m.tasks, m.err
}
func (m *mockTasks) AddTask(_ context.Context, userID int, content, dueDate string) (models.Task, error) {
	m.calls++
	m.lastUserID, m.lastContent, m.lastDueDate = userID, content, dueDate
	return m.task, m.err
}
func (m *mockTasks) ToggleTask(_ context.Context, userID, taskID int) (models.Task, error) {
	m.calls++
	m.lastUserID, m.lastTaskID = userID, taskID
	return m.task, m.err
}
func (m *mockTasks) EditTask(_ context.Context, userID, taskID int, content string) (models.Task, error) {
	m.calls++
	m.lastUserID, m.lastTaskID, m.lastContent = userID, taskID, content
	return m.task, m.err
}
func (m *mockTasks) DeleteTask(_ context.Context, userID, taskID int) error {
	m.calls++
	m.lastUserID, m.lastTaskID = userID, taskID
	return m.err
}
func (m *mockTasks) ResolveAll(_ context.Context, userID int) (int, error) {
	m.calls++
	m.lastUserID = userID
	return m.n, m.err
}

type mockAnalytics struct {
	summary models.Summary
	err     error
}

func (m *mockAnalytics) Summarize(context.Context, int) (models.Summary, error) {
	return m.summary, m.err
}

type mockActivity struct {
	recorded   []models.Activity
	recordErr  error
	resp       []models.Activity
	historyErr error
	lastFilter service.ActivityFilter
}

func (m *mockActivity) Record(_ context.Context, a models.Activity) error {
	m.recorded = append(m.recorded, a)
	return m.recordErr
}
func (m *mockActivity) History(_ context.Context, _ int, f service.ActivityFilter) ([]models.Activity, error) {
	m.lastFilter = f
	return m.resp, m.historyErr
}

type mockHealth struct{ err error }

func (m mockHealth) Ping(context.Context) error { return m.err }

// ---- Shared Test Helpers ----

const testCookie = "session"

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, SessionOptions{CookieName: testCookie})
	return h.InitRoutes()
}

// signedIn returns a service whose session resolves to userID.
func signedIn(userID int) *service.Service {
	return &service.Service{
		Authorization: &mockAuth{parseID: userID},
		Tasks:         &mockTasks{},
		Analytics:     &mockAnalytics{},
		ActivityLog:   &mockActivity{},
		Health:        mockHealth{},
	}
}

func sessionCookie() *http.Cookie {
	return &http.Cookie{Name: testCookie, Value: "valid"}
}

func serve(r http.Handler, req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return serve(r, httptest.NewRequest(http.MethodGet, path, nil), cookies...)
}

func postForm(r http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return serve(r, req, cookies...)
}

func responseCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	var found *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			found = c
		}
	}
	return found
}

// flashes returns the flashes the response leaves for the next page.
func flashes(w *httptest.ResponseRecorder) []Flash {
	c := responseCookie(w, flashCookie)
	if c == nil || c.MaxAge < 0 {
		return nil
	}
	return decodeFlashes(c.Value)
}

func hasFlash(w *httptest.ResponseRecorder, category, message string) bool {
	for _, f := range flashes(w) {
		if f.Category == category && f.Message == message {
			return true
		}
	}
	return false
}
