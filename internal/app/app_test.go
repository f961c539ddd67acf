package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"teksher_backend/internal/model"
	"teksher_backend/internal/testutil"
	"teksher_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

type testServer struct {
	t   *testing.T
	app *App
	db  *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := testutil.NewDB(t)
	return &testServer{t: t, app: New(testutil.Config(), db, nil), db: db}
}

func (s *testServer) token(user *model.User) string {
	s.t.Helper()
	token, err := util.GenerateJWT(user, testutil.TestSecret, time.Hour)
	require.NoError(s.t, err)
	return token
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.app.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data), string(env.Data))
	}
	return env
}

func TestHealthAndUnknownRoutes(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var health struct {
		Status     string            `json:"status"`
		Components map[string]string `json:"components"`
	}
	decode(t, w, &health)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "up", health.Components["database"])
	assert.NotContains(t, health.Components, "redis")

	w = s.do(http.MethodGet, "/api/v1/nothing-here", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, decode(t, w, nil).Code)

	w = s.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestReadsArePublicWritesRequireAuth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/v1/categories", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/categories"},
		{http.MethodDelete, "/api/v1/testsets/1"},
		{http.MethodGet, "/api/v1/attempts"},
		{http.MethodGet, "/api/v1/answers"},
		{http.MethodGet, "/api/v1/bookmarks/question-bookmarks"},
		{http.MethodGet, "/api/v1/users/me"},
		{http.MethodGet, "/api/v1/users/progress"},
		{http.MethodPost, "/api/v1/users/progress/reset_all"},
	} {
		w := s.do(tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}

	w = s.do(http.MethodGet, "/api/v1/users/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCategoryLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.token(testutil.CreateUser(t, s.db, "editor"))

	w := s.do(http.MethodPost, "/api/v1/categories", token, map[string]interface{}{"description": "no name"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w, nil)
	assert.Equal(t, []string{"This field is required."}, env.Errors["name"])

	w = s.do(http.MethodPost, "/api/v1/categories", token, map[string]interface{}{
		"name":     "Physics",
		"metadata": map[string]interface{}{"color": "blue"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created model.Category
	decode(t, w, &created)
	assert.Equal(t, fmt.Sprintf("/api/v1/categories/%d", created.ID), w.Header().Get("Location"))

	w = s.do(http.MethodPatch, fmt.Sprintf("/api/v1/categories/%d", created.ID), token, map[string]interface{}{"description": "forces"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var patched model.Category
	decode(t, w, &patched)
	assert.Equal(t, "Physics", patched.Name)
	assert.Equal(t, "forces", patched.Description)

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/v1/categories/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = s.do(http.MethodGet, fmt.Sprintf("/api/v1/categories/%d", created.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/v1/categories/abc", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContentFiltersAndInvalidParent(t *testing.T) {
	s := newTestServer(t)
	token := s.token(testutil.CreateUser(t, s.db, "editor"))
	cat := testutil.CreateCategory(t, s.db, "Math")
	ts := testutil.CreateTestSet(t, s.db, cat.ID, "Algebra Basics", "Linear equations", "Easy")
	testutil.CreateTestSet(t, s.db, cat.ID, "Geometry", "Triangles", "Hard")
	q := testutil.CreateQuestion(t, s.db, ts.ID, "2x = 4?")
	testutil.CreateOption(t, s.db, q.ID, "2", true)

	w := s.do(http.MethodGet, "/api/v1/testsets?category_id=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/v1/testsets?difficulty=EASY&search=linear", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sets []struct {
		ID        uint   `json:"id"`
		Title     string `json:"title"`
		Questions []uint `json:"questions"`
	}
	decode(t, w, &sets)
	require.Len(t, sets, 1)
	assert.Equal(t, "Algebra Basics", sets[0].Title)
	assert.Equal(t, []uint{q.ID}, sets[0].Questions)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/v1/options?question_id=%d", q.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var options []struct {
		Question struct {
			TestSet struct {
				Title string `json:"title"`
			} `json:"testset"`
		} `json:"question"`
	}
	decode(t, w, &options)
	require.Len(t, options, 1)
	assert.Equal(t, "Algebra Basics", options[0].Question.TestSet.Title)

	w = s.do(http.MethodPost, "/api/v1/questions", token, map[string]interface{}{
		"testset_id":  999,
		"content":     "orphan",
		"explanation": "",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w, nil)
	assert.Equal(t, []string{`Invalid pk "999" - object does not exist.`}, env.Errors["testset_id"])
}

func TestRegisterLoginLogout(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/v1/users/register", "", map[string]interface{}{
		"username":         "nadia",
		"email":            "nadia@example.com",
		"password":         "Blue-Otter-77",
		"password_confirm": "Blue-Otter-99",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w, nil).Errors, "password")

	w = s.do(http.MethodPost, "/api/v1/users/register", "", map[string]interface{}{
		"username":         "nadia",
		"email":            "nadia@example.com",
		"password":         "Blue-Otter-77",
		"password_confirm": "Blue-Otter-77",
		"first_name":       "Nadia",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var registered struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	decode(t, w, &registered)
	assert.Equal(t, "User registered successfully", registered.Message)
	assert.NotEmpty(t, registered.Token)

	w = s.do(http.MethodPost, "/api/v1/users/login", "", map[string]interface{}{"username": "nadia", "password": "wrong-one"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"Unable to log in with provided credentials."}, decode(t, w, nil).Errors["non_field_errors"])

	w = s.do(http.MethodPost, "/api/v1/users/login", "", map[string]interface{}{"username": "nadia", "password": "Blue-Otter-77"})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	decode(t, w, &login)

	w = s.do(http.MethodGet, "/api/v1/users/me", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		Username  string `json:"username"`
		FirstName string `json:"first_name"`
	}
	decode(t, w, &me)
	assert.Equal(t, "nadia", me.Username)
	assert.Equal(t, "Nadia", me.FirstName)

	w = s.do(http.MethodGet, "/api/v1/users/preferences/my_preferences", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var prefs model.UserPreferences
	decode(t, w, &prefs)
	assert.Equal(t, model.Language("en"), prefs.Language)

	w = s.do(http.MethodPost, "/api/v1/users/logout", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/v1/users/me", login.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 注销只影响该令牌
	w = s.do(http.MethodGet, "/api/v1/users/me", registered.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPasswordResetOverHTTP(t *testing.T) {
	s := newTestServer(t)
	user := testutil.CreateUser(t, s.db, "olek")

	w := s.do(http.MethodPost, "/api/v1/users/reset-password", "", map[string]interface{}{"email": "nobody@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	var generic struct {
		Message string `json:"message"`
		UID     string `json:"uid"`
	}
	decode(t, w, &generic)
	assert.Empty(t, generic.UID)

	w = s.do(http.MethodPost, "/api/v1/users/reset-password", "", map[string]interface{}{"email": user.Email})
	require.Equal(t, http.StatusOK, w.Code)
	var result struct {
		UID   string `json:"uid"`
		Token string `json:"token"`
	}
	decode(t, w, &result)
	require.NotEmpty(t, result.Token)

	w = s.do(http.MethodPost, "/api/v1/users/reset-password/confirm", "", map[string]interface{}{
		"user_id":          user.ID,
		"token":            "zzz-deadbeef",
		"new_password":     "Fresh-Start-2024",
		"confirm_password": "Fresh-Start-2024",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid token", decode(t, w, nil).Message)

	w = s.do(http.MethodPost, "/api/v1/users/reset-password/confirm", "", map[string]interface{}{
		"user_id":          user.ID,
		"token":            result.Token,
		"new_password":     "Fresh-Start-2024",
		"confirm_password": "Fresh-Start-2024",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/v1/users/login", "", map[string]interface{}{"username": "olek", "password": "Fresh-Start-2024"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOwnedResourcesAreIsolated(t *testing.T) {
	s := newTestServer(t)
	alice := testutil.CreateUser(t, s.db, "alice")
	bob := testutil.CreateUser(t, s.db, "bob")
	aliceToken, bobToken := s.token(alice), s.token(bob)

	cat := testutil.CreateCategory(t, s.db, "History")
	ts := testutil.CreateTestSet(t, s.db, cat.ID, "Rome", "Empire", "Medium")
	q := testutil.CreateQuestion(t, s.db, ts.ID, "Founded?")
	opt := testutil.CreateOption(t, s.db, q.ID, "753 BC", true)

	created := map[string]uint{}
	bodies := map[string]map[string]interface{}{}
	create := func(path string, body map[string]interface{}) {
		t.Helper()
		w := s.do(http.MethodPost, path, aliceToken, body)
		require.Equal(t, http.StatusCreated, w.Code, "%s: %s", path, w.Body.String())
		var obj struct {
			ID uint `json:"id"`
		}
		decode(t, w, &obj)
		created[path] = obj.ID
		bodies[path] = body
	}

	create("/api/v1/attempts", map[string]interface{}{"testset": ts.ID, "score_percent": 100, "passed": true, "duration_minutes": 5, "user": bob.ID})
	create("/api/v1/answers", map[string]interface{}{"attempt": created["/api/v1/attempts"], "question": q.ID, "selected_option": opt.ID, "is_correct": true})
	create("/api/v1/bookmarks/question-bookmarks", map[string]interface{}{"testset": ts.ID, "question": q.ID})
	create("/api/v1/bookmarks/testset-bookmarks", map[string]interface{}{"testset": ts.ID})
	create("/api/v1/users/progress", map[string]interface{}{"testset": ts.ID, "status": "in_progress", "last_question_index": 0, "time_spent": 30})
	create("/api/v1/users/history", map[string]interface{}{"question": q.ID, "times_attempted": 4, "times_correct": 3})
	create("/api/v1/users/profiles", map[string]interface{}{})
	create("/api/v1/users/preferences", map[string]interface{}{"language": "ru", "theme": "dark", "notifications_enabled": false})

	var attempt model.TestAttempt
	require.NoError(t, s.db.First(&attempt, created["/api/v1/attempts"]).Error)
	assert.Equal(t, alice.ID, attempt.UserID)

	for path, id := range created {
		w := s.do(http.MethodGet, fmt.Sprintf("%s/%d", path, id), bobToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, "bob GET %s", path)

		w = s.do(http.MethodPatch, fmt.Sprintf("%s/%d", path, id), bobToken, bodies[path])
		assert.Equal(t, http.StatusNotFound, w.Code, "bob PATCH %s", path)

		w = s.do(http.MethodPut, fmt.Sprintf("%s/%d", path, id), bobToken, bodies[path])
		assert.Equal(t, http.StatusNotFound, w.Code, "bob PUT %s", path)

		w = s.do(http.MethodDelete, fmt.Sprintf("%s/%d", path, id), bobToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, "bob DELETE %s", path)

		w = s.do(http.MethodGet, path, bobToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var items []json.RawMessage
		decode(t, w, &items)
		assert.Empty(t, items, "bob list %s", path)

		w = s.do(http.MethodGet, fmt.Sprintf("%s/%d", path, id), aliceToken, nil)
		assert.Equal(t, http.StatusOK, w.Code, "alice GET %s", path)
	}

	w := s.do(http.MethodPatch, fmt.Sprintf("/api/v1/users/preferences/%d", created["/api/v1/users/preferences"]), bobToken, map[string]interface{}{"theme": "light"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	var prefs model.UserPreferences
	require.NoError(t, s.db.First(&prefs, created["/api/v1/users/preferences"]).Error)
	assert.Equal(t, model.ThemeDark, prefs.Theme)

	// bob 不能往 alice 的答题记录里写作答
	w = s.do(http.MethodPost, "/api/v1/answers", bobToken, map[string]interface{}{"attempt": created["/api/v1/attempts"], "question": q.ID, "is_correct": false})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w, nil).Errors, "attempt")

	w = s.do(http.MethodGet, fmt.Sprintf("/api/v1/users/history/%d", created["/api/v1/users/history"]), aliceToken, nil)
	var history model.QuestionHistory
	decode(t, w, &history)
	assert.InDelta(t, 75.0, history.Accuracy, 0.001)
}

func TestProgressEndpoints(t *testing.T) {
	s := newTestServer(t)
	user := testutil.CreateUser(t, s.db, "mira")
	token := s.token(user)
	cat := testutil.CreateCategory(t, s.db, "Chemistry")
	ts := testutil.CreateTestSet(t, s.db, cat.ID, "Acids", "pH", "Easy")

	w := s.do(http.MethodGet, "/api/v1/users/progress/by_status", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Status parameter is required", decode(t, w, nil).Message)

	body := map[string]interface{}{"testset": ts.ID, "status": "completed", "last_question_index": 9, "time_spent": 600}
	w = s.do(http.MethodPost, "/api/v1/users/progress", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/v1/users/progress", token, body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"The fields user, testset must make a unique set."}, decode(t, w, nil).Errors["non_field_errors"])

	w = s.do(http.MethodGet, "/api/v1/users/progress/by_status?status=completed", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var done []model.TestProgress
	decode(t, w, &done)
	assert.Len(t, done, 1)

	w = s.do(http.MethodPost, "/api/v1/users/progress/reset_all", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var msg struct {
		Message string `json:"message"`
	}
	decode(t, w, &msg)
	assert.Equal(t, "All progress has been reset", msg.Message)

	var n int64
	require.NoError(t, s.db.Model(&model.TestProgress{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestStaticShellFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>shell</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	cfg := testutil.Config()
	cfg.Server.StaticDir = dir
	s := &testServer{t: t, db: testutil.NewDB(t)}
	s.app = New(cfg, s.db, nil)

	w := s.do(http.MethodGet, "/app.js", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "console.log")

	w = s.do(http.MethodGet, "/quiz/42", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "shell")

	w = s.do(http.MethodGet, "/api/v1/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
