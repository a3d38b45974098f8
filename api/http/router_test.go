package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	router "github.com/artem13815/jobmatch/api/http"
	"github.com/artem13815/jobmatch/api/http/handlers"
	"github.com/artem13815/jobmatch/pkg/analysis"
	"github.com/artem13815/jobmatch/pkg/health"
	"github.com/artem13815/jobmatch/pkg/job"
	sqliterepo "github.com/artem13815/jobmatch/pkg/repository/sqlite"
	"github.com/artem13815/jobmatch/pkg/resume"
	"github.com/artem13815/jobmatch/pkg/storage/files"
)

const maxUpload = 1 << 10

type failingChecker struct{}

func (failingChecker) Name() string                { return "postgres" }
func (failingChecker) Check(context.Context) error { return assert.AnError }

type brokenStore struct{}

func (brokenStore) Save(context.Context, string, string, []byte) (string, error) {
	return "", assert.AnError
}

func (brokenStore) Sweep(context.Context, time.Time) (int, error) { return 0, nil }

type testEnv struct {
	app    *fiber.App
	jobs   job.UseCase
	upload string
}

func newEnv(t *testing.T, store files.Store, checkers ...health.Checker) *testEnv {
	t.Helper()
	ctx := context.Background()

	db, err := sqliterepo.Open("sqlite:" + filepath.Join(t.TempDir(), "jobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqliterepo.NewJobRepository(db)
	jobUC := job.NewService(repo, nil)
	_, err = jobUC.Bootstrap(ctx)
	require.NoError(t, err)
	_, err = repo.Insert(ctx, job.Offer{Title: "Closed", Company: "Gone", SkillsRequired: []string{"react"}, IsActive: false})
	require.NoError(t, err)

	uploadDir := t.TempDir()
	if store == nil {
		store = files.NewLocal(uploadDir)
	}

	app := fiber.New()
	router.Register(app,
		handlers.NewJobsHandler(jobUC),
		handlers.NewCVHandler(analysis.NewService(jobUC, nil, 0), store, resume.SimulatedText{}, maxUpload),
		handlers.NewHealthHandler(health.NewService(checkers...)),
	)
	router.Frontend(app, nethttp.FS(fstest.MapFS{
		"index.html": {Data: []byte("<h1>JobMatch</h1>")},
	}))
	router.NotFound(app)
	return &testEnv{app: app, jobs: jobUC, upload: uploadDir}
}

func do(t *testing.T, app *fiber.App, req *nethttp.Request) (int, []byte) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func cvRequest(t *testing.T, field, filename string, data []byte) *nethttp.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(nethttp.MethodPost, "/api/analyze-cv", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

var minimalPDF = []byte("%PDF-1.4\n%%EOF\n")

func TestJobs_ListOnlyActive(t *testing.T) {
	env := newEnv(t, nil)

	code, body := do(t, env.app, httptest.NewRequest(nethttp.MethodGet, "/api/jobs", nil))
	require.Equal(t, nethttp.StatusOK, code)

	var offers []job.Offer
	require.NoError(t, json.Unmarshal(body, &offers))
	assert.Len(t, offers, 3)
	for _, o := range offers {
		assert.True(t, o.IsActive)
		assert.NotEqual(t, "Closed", o.Title)
	}
}

func TestJobs_Get(t *testing.T) {
	env := newEnv(t, nil)
	offers, err := env.jobs.ListActive(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, offers)

	code, body := do(t, env.app, httptest.NewRequest(nethttp.MethodGet, "/api/jobs/"+strconv.FormatInt(offers[0].ID, 10), nil))
	require.Equal(t, nethttp.StatusOK, code)
	var got job.Offer
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, offers[0].Title, got.Title)

	code, _ = do(t, env.app, httptest.NewRequest(nethttp.MethodGet, "/api/jobs/abc", nil))
	assert.Equal(t, nethttp.StatusBadRequest, code)

	// inactive offer
	code, body = do(t, env.app, httptest.NewRequest(nethttp.MethodGet, "/api/jobs/4", nil))
	assert.Equal(t, nethttp.StatusNotFound, code)
	assert.JSONEq(t, `{"message":"job offer not found"}`, string(body))
}

func TestAnalyzeCV_OK(t *testing.T) {
	env := newEnv(t, nil)

	code, body := do(t, env.app, cvRequest(t, "cv", "cv.pdf", minimalPDF))
	require.Equal(t, nethttp.StatusOK, code, string(body))

	var res analysis.Result
	require.NoError(t, json.Unmarshal(body, &res))
	assert.True(t, res.Success)
	assert.Equal(t, 3, res.TotalMatches)
	require.Len(t, res.MatchingJobs, 3)
	assert.Equal(t, "TechCorp", res.MatchingJobs[0].Company)
	assert.Equal(t, 100, res.MatchingJobs[0].MatchScore)
	for i := 1; i < len(res.MatchingJobs); i++ {
		assert.LessOrEqual(t, res.MatchingJobs[i].MatchScore, res.MatchingJobs[i-1].MatchScore)
	}
	assert.InDelta(t, 0.8, res.UserSkills["react"], 1e-9)
	assert.Equal(t, "Analysis complete: 3 offers match your profile.", res.Message)

	matches, err := filepath.Glob(filepath.Join(env.upload, "*", "*.pdf"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestAnalyzeCV_Rejects(t *testing.T) {
	env := newEnv(t, nil)

	tests := []struct {
		name string
		req  *nethttp.Request
		code int
	}{
		{"no file", cvRequest(t, "other", "cv.pdf", minimalPDF), nethttp.StatusBadRequest},
		{"not a pdf", cvRequest(t, "cv", "cv.txt", []byte("hello world")), nethttp.StatusBadRequest},
		{"pdf name without pdf content", cvRequest(t, "cv", "cv.pdf", []byte("hello world")), nethttp.StatusBadRequest},
		{"too large", cvRequest(t, "cv", "cv.pdf", append(append([]byte{}, minimalPDF...), make([]byte, maxUpload)...)), nethttp.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, env.app, tt.req)
			assert.Equal(t, tt.code, code, string(body))
			var e map[string]any
			require.NoError(t, json.Unmarshal(body, &e))
			assert.NotEmpty(t, e["message"])
		})
	}
}

func TestAnalyzeCV_StoreFailure(t *testing.T) {
	env := newEnv(t, brokenStore{})

	code, body := do(t, env.app, cvRequest(t, "cv", "cv.pdf", minimalPDF))
	assert.Equal(t, nethttp.StatusInternalServerError, code)
	assert.JSONEq(t, `{"success":false,"message":"failed to store uploaded file"}`, string(body))
}

func TestHealth(t *testing.T) {
	env := newEnv(t, nil)

	code, body := do(t, env.app, httptest.NewRequest(nethttp.MethodGet, "/api/health", nil))
	require.Equal(t, nethttp.StatusOK, code)
	var h map[string]string
	require.NoError(t, json.Unmarshal(body, &h))
	assert.Equal(t, "OK", h["status"])
	assert.NotEmpty(t, h["timestamp"])

	code, _ = do(t, env.app, httptest.NewRequest(nethttp.MethodGet, "/api/ready", nil))
	assert.Equal(t, nethttp.StatusOK, code)
}

func TestReady_CheckerFails(t *testing.T) {
	env := newEnv(t, nil, failingChecker{})

	code, body := do(t, env.app, httptest.NewRequest(nethttp.MethodGet, "/api/ready", nil))
	assert.Equal(t, nethttp.StatusServiceUnavailable, code)
	assert.Contains(t, string(body), "postgres")
}

func TestFrontendAndNotFound(t *testing.T) {
	env := newEnv(t, nil)

	code, body := do(t, env.app, httptest.NewRequest(nethttp.MethodGet, "/", nil))
	assert.Equal(t, nethttp.StatusOK, code)
	assert.Contains(t, string(body), "JobMatch")

	code, body = do(t, env.app, httptest.NewRequest(nethttp.MethodGet, "/api/nope", nil))
	assert.Equal(t, nethttp.StatusNotFound, code)
	assert.JSONEq(t, `{"message":"route not found"}`, string(body))
}

func TestAnalyzeCV_NoActiveOffersFallsBack(t *testing.T) {
	ctx := context.Background()
	db, err := sqliterepo.Open("sqlite:" + filepath.Join(t.TempDir(), "jobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := sqliterepo.NewJobRepository(db)
	require.NoError(t, repo.EnsureSchema(ctx))
	_, err = repo.Insert(ctx, job.Offer{Title: "Closed", Company: "Gone", SkillsRequired: []string{"react"}, IsActive: false})
	require.NoError(t, err)

	jobUC := job.NewService(repo, nil)
	app := fiber.New()
	router.Register(app,
		handlers.NewJobsHandler(jobUC),
		handlers.NewCVHandler(analysis.NewService(jobUC, nil, 0), files.NewLocal(t.TempDir()), resume.SimulatedText{}, maxUpload),
		handlers.NewHealthHandler(health.NewService()),
	)

	code, body := do(t, app, httptest.NewRequest(nethttp.MethodGet, "/api/jobs", nil))
	require.Equal(t, nethttp.StatusOK, code)
	assert.JSONEq(t, `[]`, string(body))

	code, body = do(t, app, cvRequest(t, "cv", "cv.pdf", minimalPDF))
	require.Equal(t, nethttp.StatusOK, code, string(body))
	var res analysis.Result
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, 2, res.TotalMatches)
}
