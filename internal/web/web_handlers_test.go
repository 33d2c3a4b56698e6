package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-inkwell/inkwell/internal/config"
	"github.com/go-inkwell/inkwell/internal/database"
	"github.com/go-inkwell/inkwell/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer spins up a server over a fresh database in a temp directory.
func newTestServer(t *testing.T) *WebServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbConfig := database.DefaultDBConfig()
	dbConfig.DataDir = t.TempDir()
	db, err := database.OpenDatabase(dbConfig)
	require.NoError(t, err, "OpenDatabase() failed")
	t.Cleanup(func() { db.Shutdown() })

	return NewServer(db, &config.WebConfig{ListenPort: 11990, Secret: config.DefaultSecret})
}

func doGET(t *testing.T, s *WebServer, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func doPOST(t *testing.T, s *WebServer, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func postForm(title string) url.Values {
	return url.Values{
		"title":    {title},
		"subtitle": {"B"},
		"author":   {"C"},
		"img_url":  {"http://x.com/i.png"},
		"body":     {"text"},
	}
}

func TestHomePage_Empty(t *testing.T) {
	s := newTestServer(t)

	w := doGET(t, s, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No posts yet")
}

func TestStaticPages(t *testing.T) {
	s := newTestServer(t)

	for path, want := range map[string]string{
		"/about":    "About Me",
		"/contact":  "Contact Me",
		"/new_post": "New Post",
	} {
		w := doGET(t, s, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), want, path)
	}
}

func TestPing(t *testing.T) {
	s := newTestServer(t)

	w := doGET(t, s, "/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestCreatePost(t *testing.T) {
	s := newTestServer(t)

	w := doPOST(t, s, "/new_post", postForm("A"))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	posts, err := s.DB.GetAllPosts()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "A", posts[0].Title)
	assert.Equal(t, utils.FormatDisplayDate(time.Now()), posts[0].Date)

	w = doGET(t, s, "/")
	assert.Contains(t, w.Body.String(), "A")
}

func TestCreatePost_InvalidImageURL(t *testing.T) {
	s := newTestServer(t)

	form := postForm("Keep My Input")
	form.Set("img_url", "not a url")

	w := doPOST(t, s, "/new_post", form)
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Must be a valid URL.")
	// previously entered values stay in the re-rendered form
	assert.Contains(t, body, `value="Keep My Input"`)

	posts, err := s.DB.GetAllPosts()
	require.NoError(t, err)
	assert.Empty(t, posts, "no post may be created from an invalid form")
}

func TestCreatePost_DuplicateTitle(t *testing.T) {
	s := newTestServer(t)

	w := doPOST(t, s, "/new_post", postForm("A"))
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = doPOST(t, s, "/new_post", postForm("A"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	posts, err := s.DB.GetAllPosts()
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestShowPost_Missing(t *testing.T) {
	s := newTestServer(t)

	w := doGET(t, s, "/post/999")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Post not found")
}

func TestEditPost_MissingID(t *testing.T) {
	s := newTestServer(t)

	w := doGET(t, s, "/edit_post/999")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDeletePost_MissingID(t *testing.T) {
	s := newTestServer(t)

	require.Equal(t, http.StatusSeeOther, doPOST(t, s, "/new_post", postForm("Stays")).Code)

	w := doGET(t, s, "/delete_post/999")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	posts, err := s.DB.GetAllPosts()
	require.NoError(t, err)
	assert.Len(t, posts, 1, "deleting a nonexistent id is a no-op")
}

func TestPostLifecycle(t *testing.T) {
	s := newTestServer(t)

	// create
	require.Equal(t, http.StatusSeeOther, doPOST(t, s, "/new_post", postForm("A")).Code)
	posts, err := s.DB.GetAllPosts()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	id := posts[0].ID
	originalDate := posts[0].Date

	// appears once in the list
	listBody := doGET(t, s, "/").Body.String()
	assert.Equal(t, 1, strings.Count(listBody, "/post/"+strconv.Itoa(id)))

	// edit the title, everything else unchanged
	edit := postForm("A2")
	w := doPOST(t, s, "/edit_post/"+strconv.Itoa(id), edit)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/post/"+strconv.Itoa(id), w.Header().Get("Location"))

	// detail shows the new title and the original creation date
	detail := doGET(t, s, "/post/"+strconv.Itoa(id)).Body.String()
	assert.Contains(t, detail, "A2")
	assert.Contains(t, detail, originalDate)

	// delete removes it from the list
	w = doGET(t, s, "/delete_post/"+strconv.Itoa(id))
	assert.Equal(t, http.StatusFound, w.Code)

	posts, err = s.DB.GetAllPosts()
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestEditPost_FormPrepopulated(t *testing.T) {
	s := newTestServer(t)

	require.Equal(t, http.StatusSeeOther, doPOST(t, s, "/new_post", postForm("Fill Me")).Code)
	posts, err := s.DB.GetAllPosts()
	require.NoError(t, err)
	require.Len(t, posts, 1)

	w := doGET(t, s, "/edit_post/"+strconv.Itoa(posts[0].ID))
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Edit Post")
	assert.Contains(t, body, `value="Fill Me"`)
	assert.NotContains(t, body, posts[0].Date, "the form never exposes the creation date")
}

func TestEditPost_ValidationFailureKeepsInput(t *testing.T) {
	s := newTestServer(t)

	require.Equal(t, http.StatusSeeOther, doPOST(t, s, "/new_post", postForm("Original")).Code)
	posts, err := s.DB.GetAllPosts()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	id := posts[0].ID

	bad := postForm("Partial Edit")
	bad.Set("body", "   ")
	w := doPOST(t, s, "/edit_post/"+strconv.Itoa(id), bad)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "This field is required.")
	assert.Contains(t, w.Body.String(), `value="Partial Edit"`)

	// nothing was written
	stored, err := s.DB.GetPostByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Original", stored.Title)
}

func TestStaticStylesheet(t *testing.T) {
	s := newTestServer(t)

	w := doGET(t, s, "/static/style.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "post-body")
}
