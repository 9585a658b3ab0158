//go:build integration || !unit

package integration

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	server "eduquote/internal/adapters/http_server"
	redisad "eduquote/internal/adapters/redis"
	"eduquote/internal/app"
	"eduquote/internal/storage/blob"
	mysqlrepo "eduquote/internal/storage/mysql"
)

const adminPass = "e2e-admin"

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/sql)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startStack(t *testing.T) *httptest.Server {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=eduquote",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/eduquote?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))
	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	applyMigrations(t, db)

	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)

	store, err := blob.New(t.TempDir(), "/images")
	if err != nil {
		t.Fatalf("blob: %v", err)
	}

	repo := mysqlrepo.New(db)
	srv := server.New()
	srv.MountHandlers(&server.Handlers{
		Q:         app.NewQueryService(repo, cache, time.Minute),
		Catalog:   app.NewCatalogService(repo, cache),
		Settings:  app.NewSettingsService(repo),
		Drafts:    app.NewDraftService(nil),
		Blob:      store,
		AdminPass: adminPass,
	})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func call(t *testing.T, method, url string, admin bool, body any) (int, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if admin {
		req.Header.Set("X-Admin-Password", adminPass)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	var out bytes.Buffer
	_, _ = out.ReadFrom(resp.Body)
	return resp.StatusCode, out.Bytes()
}

func TestE2E_RestoreFetchSaveDelete(t *testing.T) {
	ts := startStack(t)

	// Cold start: empty portal serves an empty list, not the factory set.
	code, body := call(t, "GET", ts.URL+"/v1/portals/YL_GROUPS/programs", false, nil)
	if code != 200 {
		t.Fatalf("fetch: %d %s", code, body)
	}
	var rows []app.ProgramRow
	if err := json.Unmarshal(body, &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("cold portal should be empty, got %d rows", len(rows))
	}

	// Restore populates from the factory set; a second call is a no-op.
	code, body = call(t, "POST", ts.URL+"/v1/portals/YL_GROUPS/restore", true, nil)
	if code != 200 || string(bytes.TrimSpace(body)) != `{"restored":true}` {
		t.Fatalf("restore: %d %s", code, body)
	}
	code, body = call(t, "POST", ts.URL+"/v1/portals/YL_GROUPS/restore", true, nil)
	if code != 200 || string(bytes.TrimSpace(body)) != `{"restored":false}` {
		t.Fatalf("restore twice: %d %s", code, body)
	}

	code, body = call(t, "GET", ts.URL+"/v1/portals/YL_GROUPS/programs", false, nil)
	if code != 200 {
		t.Fatalf("fetch: %d", code)
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 7 {
		t.Fatalf("want 7 restored programs, got %d", len(rows))
	}
	if len(rows[0].ID) != 36 {
		t.Fatalf("restored rows must carry durable ids, got %q", rows[0].ID)
	}

	// Edit one program through Save; identity must be preserved.
	edited := rows[0]
	edited.Description = "updated over http"
	code, body = call(t, "POST", ts.URL+"/v1/portals/YL_GROUPS/programs", true, edited)
	if code != 200 {
		t.Fatalf("save: %d %s", code, body)
	}
	var saved app.ProgramRow
	if err := json.Unmarshal(body, &saved); err != nil {
		t.Fatalf("decode saved: %v", err)
	}
	if saved.ID != edited.ID || saved.Description != "updated over http" {
		t.Fatalf("save mangled the row: %+v", saved)
	}

	// Cache was invalidated: the next fetch sees the edit.
	code, body = call(t, "GET", ts.URL+"/v1/portals/YL_GROUPS/programs", false, nil)
	if code != 200 {
		t.Fatalf("refetch: %d", code)
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rows[0].Description != "updated over http" {
		t.Fatalf("stale read after save: %q", rows[0].Description)
	}

	// Delete, restore heals exactly the gap.
	code, _ = call(t, "DELETE", ts.URL+"/v1/programs/"+saved.ID, true, nil)
	if code != 200 {
		t.Fatalf("delete: %d", code)
	}
	code, body = call(t, "POST", ts.URL+"/v1/portals/YL_GROUPS/restore", true, nil)
	if code != 200 || string(bytes.TrimSpace(body)) != `{"restored":true}` {
		t.Fatalf("restore after delete: %d %s", code, body)
	}
	code, body = call(t, "GET", ts.URL+"/v1/portals/YL_GROUPS/programs", false, nil)
	if code != 200 {
		t.Fatalf("final fetch: %d", code)
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 7 {
		t.Fatalf("want 7 after heal, got %d", len(rows))
	}
}

func TestE2E_ResetAndSeedWipesDurableIDs(t *testing.T) {
	ts := startStack(t)

	call(t, "POST", ts.URL+"/v1/portals/ADULTS/seed", true, nil)
	code, body := call(t, "GET", ts.URL+"/v1/portals/ADULTS/programs", false, nil)
	if code != 200 {
		t.Fatalf("fetch: %d", code)
	}
	var before []app.ProgramRow
	if err := json.Unmarshal(body, &before); err != nil {
		t.Fatalf("decode: %v", err)
	}

	code, _ = call(t, "POST", ts.URL+"/v1/portals/ADULTS/reset?confirm=true", true, nil)
	if code != 200 {
		t.Fatalf("reset: %d", code)
	}

	code, body = call(t, "GET", ts.URL+"/v1/portals/ADULTS/programs", false, nil)
	if code != 200 {
		t.Fatalf("refetch: %d", code)
	}
	var after []app.ProgramRow
	if err := json.Unmarshal(body, &after); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(after) != 7 {
		t.Fatalf("want 7 reseeded, got %d", len(after))
	}
	prior := map[string]bool{}
	for _, r := range before {
		prior[r.ID] = true
	}
	for _, r := range after {
		if prior[r.ID] {
			t.Fatalf("reset kept a pre-existing id %s", r.ID)
		}
	}
}
