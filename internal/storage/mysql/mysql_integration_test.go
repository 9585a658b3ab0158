//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"eduquote/internal/domain"
	mysqlrepo "eduquote/internal/storage/mysql"
)

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

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()

	// Start isolated MySQL; let Docker pick a free host port.
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=eduquote",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "eduquote")

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
	return db
}

func TestRepo_MySQL_ProgramLifecycle(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	first := domain.Program{
		Name:                 "Explore London: Summer",
		Location:             "King's College",
		City:                 "Londra",
		Country:              "İngiltere",
		AgeRange:             "12-17",
		Dates:                "29 Haziran - 10 Ağustos",
		Duration:             "2 Hafta",
		AccommodationType:    domain.AccommodationResidence,
		AccommodationDetails: "Tek kişilik oda",
		IncludedServices:     []string{"Haftada 15 saat Genel İngilizce"},
		YoungLearnersGoals:   []string{"Özgüven"},
		Description:          "Londra'nın kalbinde",
		HeroImage:            "https://example.com/hero.jpg",
		GalleryImages:        []string{"https://example.com/g1.jpg"},
		TimetableImages:      []string{},
		BasePriceNote:        "Kurs + Konaklama",
	}

	// Insert assigns a durable uuid identity.
	saved, err := repo.Insert(ctx, first, domain.PortalYLGroups)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !saved.Persisted() {
		t.Fatalf("inserted id %q is not durable", saved.ID)
	}

	second := first
	second.Name = "Explore Malta"
	second.Country = "Malta"
	if _, err := repo.Insert(ctx, second, domain.PortalYLGroups); err != nil {
		t.Fatalf("Insert second: %v", err)
	}

	// Other portals stay isolated.
	if _, err := repo.Insert(ctx, first, domain.PortalAdults); err != nil {
		t.Fatalf("Insert adults: %v", err)
	}

	list, err := repo.ListByPortal(ctx, domain.PortalYLGroups)
	if err != nil {
		t.Fatalf("ListByPortal: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("want 2 programs, got %d", len(list))
	}
	// insertion order
	if list[0].Name != "Explore London: Summer" || list[1].Name != "Explore Malta" {
		t.Fatalf("order broken: %q, %q", list[0].Name, list[1].Name)
	}
	if len(list[0].IncludedServices) != 1 || list[0].IncludedServices[0] != "Haftada 15 saat Genel İngilizce" {
		t.Fatalf("list round-trip broken: %+v", list[0].IncludedServices)
	}
	if list[0].TimetableImages == nil {
		t.Fatalf("empty list must round-trip as non-nil")
	}

	names, err := repo.ListNames(ctx, domain.PortalYLGroups)
	if err != nil {
		t.Fatalf("ListNames: %v", err)
	}
	if len(names) != 2 || names[0] != "Explore London: Summer" {
		t.Fatalf("names: %v", names)
	}

	// Update keeps identity, replaces content.
	saved.Description = "güncellendi"
	saved.GalleryImages = append(saved.GalleryImages, "https://example.com/g2.jpg")
	if _, err := repo.Update(ctx, saved, domain.PortalYLGroups); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Description != "güncellendi" || len(got.GalleryImages) != 2 {
		t.Fatalf("update not visible: %+v", got)
	}

	// Delete one, then wipe the portal.
	if err := repo.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, saved.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete: want ErrNotFound, got %v", err)
	}
	n, err := repo.DeleteByPortal(ctx, domain.PortalYLGroups)
	if err != nil {
		t.Fatalf("DeleteByPortal: %v", err)
	}
	if n != 1 {
		t.Fatalf("want 1 wiped, got %d", n)
	}

	// Adults portal untouched by the wipe.
	adults, err := repo.ListByPortal(ctx, domain.PortalAdults)
	if err != nil || len(adults) != 1 {
		t.Fatalf("adults: %v %d", err, len(adults))
	}
}

func TestRepo_MySQL_DuplicateIDClassified(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	saved, err := repo.Insert(ctx, domain.Program{Name: "A"}, domain.PortalYLGroups)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	// Force a primary-key collision through raw SQL; Insert always generates
	// a fresh uuid so it cannot collide on its own.
	_, err = db.ExecContext(ctx, `INSERT INTO programs
	  (id, portal_type, name, included_services, young_learners_goals, gallery_images, timetable_images)
	  VALUES (?, 'YL_GROUPS', 'B', '[]', '[]', '[]', '[]')`, saved.ID)
	if err == nil {
		t.Fatalf("expected duplicate key error")
	}
}

func TestRepo_MySQL_SettingsUpsert(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	// Cold read: no row yet, empty settings, no error.
	s, err := repo.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if s.LogoURL != nil || s.BannerURL != nil {
		t.Fatalf("want empty settings, got %+v", s)
	}

	logo := "/images/settings/logo.png"
	if err := repo.SaveSettings(ctx, domain.Settings{LogoURL: &logo}); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	banner := "/images/settings/banner.jpg"
	if err := repo.SaveSettings(ctx, domain.Settings{LogoURL: &logo, BannerURL: &banner}); err != nil {
		t.Fatalf("SaveSettings upsert: %v", err)
	}

	s, err = repo.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if s.LogoURL == nil || *s.LogoURL != logo || s.BannerURL == nil || *s.BannerURL != banner {
		t.Fatalf("settings round-trip broken: %+v", s)
	}
}
