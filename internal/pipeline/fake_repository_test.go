package pipeline_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeRepository serves canned JSON documents keyed by path and records
// which paths were requested with basic auth.
type fakeRepository struct {
	t      *testing.T
	server *httptest.Server

	mu        sync.Mutex
	docs      map[string]string
	requests  []string
	authPaths map[string]bool
}

func newFakeRepository(t *testing.T) *fakeRepository {
	t.Helper()
	repo := &fakeRepository{
		t:         t,
		docs:      make(map[string]string),
		authPaths: make(map[string]bool),
	}
	repo.server = httptest.NewServer(http.HandlerFunc(repo.serve))
	t.Cleanup(repo.server.Close)
	return repo
}

func (r *fakeRepository) serve(w http.ResponseWriter, req *http.Request) {
	assert.Equal(r.t, "json", req.URL.Query().Get("_format"))

	r.mu.Lock()
	r.requests = append(r.requests, req.URL.Path)
	user, pass, ok := req.BasicAuth()
	if ok {
		assert.Equal(r.t, "archivist", user)
		assert.Equal(r.t, "hunter2", pass)
		r.authPaths[req.URL.Path] = true
	}
	body, found := r.docs[req.URL.Path]
	r.mu.Unlock()

	if !found {
		http.NotFound(w, req)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func (r *fakeRepository) URL() string {
	return r.server.URL
}

func (r *fakeRepository) add(path, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[path] = body
}

// addModel registers a taxonomy term whose external URI is uri.
func (r *fakeRepository) addModel(path, uri string) {
	r.add(path, fmt.Sprintf(`{"name":[{"value":"term"}],"field_external_uri":[{"uri":%q}]}`, uri))
}

// addNode registers a node document.
func (r *fakeRepository) addNode(path, uuid, modelPath string, memberOf ...string) {
	r.add(path, nodeJSON(uuid, modelPath, memberOf...))
}

func (r *fakeRepository) count(path string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.requests {
		if p == path {
			n++
		}
	}
	return n
}

func (r *fakeRepository) authenticated(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.authPaths[path]
}

func nodeJSON(uuid, modelPath string, memberOf ...string) string {
	refs := "[]"
	if len(memberOf) > 0 {
		refs = "["
		for i, m := range memberOf {
			if i > 0 {
				refs += ","
			}
			refs += fmt.Sprintf(`{"target_type":"node","url":%q}`, m)
		}
		refs += "]"
	}
	return fmt.Sprintf(`{"uuid":[{"value":%q}],"field_model":[{"url":%q}],"field_member_of":%s}`, uuid, modelPath, refs)
}
