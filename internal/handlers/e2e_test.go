package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"todo_manager/internal/models"
	"todo_manager/internal/repository"
	"todo_manager/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// browser replays cookies between requests like a user agent would.
type browser struct {
	t      *testing.T
	r      http.Handler
	jar    map[string]*http.Cookie
	last   *httptest.ResponseRecorder
	lastFl []Flash
}

func newBrowser(t *testing.T, r http.Handler) *browser {
	return &browser{t: t, r: r, jar: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.jar {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	b.r.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.jar, c.Name)
			continue
		}
		b.jar[c.Name] = c
	}
	b.last = w
	b.lastFl = flashes(w)
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) expectRedirect(to, message string) {
	b.t.Helper()
	if b.last.Code != http.StatusFound || b.last.Header().Get("Location") != to {
		b.t.Fatalf("got %d -> %q, want 302 -> %q", b.last.Code, b.last.Header().Get("Location"), to)
	}
	for _, f := range b.lastFl {
		if f.Message == message {
			return
		}
	}
	b.t.Fatalf("flash %q not found in %+v", message, b.lastFl)
}

func (b *browser) summary() models.Summary {
	b.t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/analytics", nil)
	req.Header.Set("Accept", "application/json")
	w := b.do(req)
	if w.Code != http.StatusOK {
		b.t.Fatalf("analytics status=%d", w.Code)
	}
	var s models.Summary
	if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
		b.t.Fatalf("unmarshal summary: %v", err)
	}
	return s
}

func newAppRouter(t *testing.T) (*gin.Engine, *repository.Repository) {
	t.Helper()
	repos := repository.NewMemoryRepository()
	services := service.NewService(repos, service.Options{SigningKey: "test-key", BcryptCost: bcrypt.MinCost})
	gin.SetMode(gin.TestMode)
	return NewHandler(services, nil, SessionOptions{CookieName: testCookie, TTL: time.Hour}).InitRoutes(), repos
}

func TestEndToEnd_AliceFlow(t *testing.T) {
	r, repos := newAppRouter(t)
	alice := newBrowser(t, r)

	alice.post("/register", registerForm("alice", "a@x.com", "pw"))
	alice.expectRedirect("/login", msgRegistered)

	alice.post("/login", url.Values{"username": {"alice"}, "password": {"pw"}})
	alice.expectRedirect("/index", msgLoggedIn)

	w := alice.get("/index")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), msgLoggedIn) {
		t.Fatalf("index after login: %d\n%s", w.Code, w.Body.String())
	}

	alice.post("/task", url.Values{"content": {"Buy milk"}, "due_date": {"2099-01-01"}})
	alice.expectRedirect("/index", msgTaskAdded)

	tasks, _ := repos.Tasks.ListByUser(t.Context(), 1)
	if len(tasks) != 1 {
		t.Fatalf("expected one stored task, got %+v", tasks)
	}
	taskID := tasks[0].ID

	if w := alice.get("/index"); !strings.Contains(w.Body.String(), "1 pending") || !strings.Contains(w.Body.String(), "Buy milk") {
		t.Fatalf("index should list one pending task:\n%s", w.Body.String())
	}

	if s := alice.summary(); s != (models.Summary{TotalTasks: 1, PendingTasks: 1}) {
		t.Fatalf("summary before toggle: %+v", s)
	}

	alice.post("/toggle", url.Values{"task_id": {strconv.Itoa(taskID)}})
	alice.expectRedirect("/index", msgTaskToggled)

	if s := alice.summary(); s != (models.Summary{TotalTasks: 1, CompletedTasks: 1}) {
		t.Fatalf("summary after toggle: %+v", s)
	}

	alice.get("/logout")
	alice.expectRedirect("/login", msgLoggedOut)

	alice.get("/index")
	alice.expectRedirect("/login", msgLoginRequired)
}

func TestEndToEnd_CrossUserDelete(t *testing.T) {
	r, repos := newAppRouter(t)

	alice := newBrowser(t, r)
	alice.post("/register", registerForm("alice", "a@x.com", "pw"))
	alice.post("/login", url.Values{"username": {"alice"}, "password": {"pw"}})
	alice.post("/task", url.Values{"content": {"mine"}})

	bob := newBrowser(t, r)
	bob.post("/register", registerForm("bob", "b@x.com", "pw"))
	bob.post("/login", url.Values{"username": {"bob"}, "password": {"pw"}})

	tasks, _ := repos.Tasks.ListByUser(t.Context(), 1)
	if len(tasks) != 1 {
		t.Fatalf("alice should own one task, got %+v", tasks)
	}

	bob.get("/delete/" + strconv.Itoa(tasks[0].ID))
	bob.expectRedirect("/index", msgTaskNotFound)

	if after, _ := repos.Tasks.ListByUser(t.Context(), 1); len(after) != 1 {
		t.Fatalf("task deleted by foreign user")
	}
}

func TestEndToEnd_DuplicateRegistration(t *testing.T) {
	r, _ := newAppRouter(t)
	b := newBrowser(t, r)

	b.post("/register", registerForm("alice", "a@x.com", "pw"))
	b.post("/register", registerForm("alice", "other@x.com", "pw"))
	b.expectRedirect("/register", msgUsernameTaken)

	b.post("/register", registerForm("alice2", "a@x.com", "pw"))
	b.expectRedirect("/login", msgEmailTaken)

	b.post("/login", url.Values{"username": {"nobody"}, "password": {"pw"}})
	b.expectRedirect("/register", msgUnknownUser)

	b.post("/login", url.Values{"username": {"alice"}, "password": {"wrong"}})
	b.expectRedirect("/login", msgWrongPassword)
}

func TestEndToEnd_ActivityTrail(t *testing.T) {
	r, _ := newAppRouter(t)
	b := newBrowser(t, r)

	b.post("/register", registerForm("alice", "a@x.com", "pw"))
	b.post("/login", url.Values{"username": {"alice"}, "password": {"pw"}})
	b.post("/task", url.Values{"content": {"Buy milk"}})
	b.get("/finished")

	req := httptest.NewRequest(http.MethodGet, "/activity", nil)
	req.Header.Set("Accept", "application/json")
	w := b.do(req)

	var out struct {
		Count      int               `json:"count"`
		Activities []models.Activity `json:"activities"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v (%s)", err, w.Body.String())
	}
	seen := map[string]bool{}
	for _, a := range out.Activities {
		seen[a.Type] = true
	}
	for _, typ := range []string{models.ActivityRegistered, models.ActivityLogin, models.ActivityTaskCreated, models.ActivityTasksResolved} {
		if !seen[typ] {
			t.Fatalf("missing %s in %+v", typ, out.Activities)
		}
	}
}
