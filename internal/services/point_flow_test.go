package services_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"ecoleta/internal/domain"
	"ecoleta/internal/repos"
	"ecoleta/internal/services"
)

const testBaseURL = "http://localhost:3333"

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newPointService(db *sqlx.DB) *services.PointService {
	return services.NewPointService(repos.NewPointRepo(db), repos.NewItemRepo(db), testBaseURL)
}

func springfieldPoint(items []int64) services.CreatePointInput {
	return services.CreatePointInput{
		Name:      "Mercado da Esquina",
		Email:     "contato@mercado.test",
		Whatsapp:  "5511999990000",
		Latitude:  -23.5505,
		Longitude: -46.6333,
		City:      "Springfield",
		UF:        "IL",
		ItemIDs:   items,
		Image:     "point.jpg",
	}
}

func TestCreateShowRoundtrip(t *testing.T) {
	db := memdb(t)
	svc := newPointService(db)

	in := springfieldPoint([]int64{1, 3})
	created, err := svc.Create(in)
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == 0 {
		t.Fatal("created point has no id")
	}

	detail, err := svc.Show(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	p := detail.Point
	if p.Name != in.Name || p.Email != in.Email || p.Whatsapp != in.Whatsapp ||
		p.Latitude != in.Latitude || p.Longitude != in.Longitude ||
		p.City != in.City || p.UF != in.UF || p.Image != in.Image {
		t.Fatalf("stored fields differ from submitted: %+v", p)
	}
	if p.ImageURL != testBaseURL+"/uploads/point.jpg" {
		t.Fatalf("bad image_url: %s", p.ImageURL)
	}

	// titles of items 1 and 3, order-independent
	want := map[string]bool{"Lâmpadas": true, "Papéis e Papelão": true}
	if len(detail.Items) != 2 {
		t.Fatalf("want 2 item titles, got %+v", detail.Items)
	}
	for _, it := range detail.Items {
		if !want[it.Title] {
			t.Fatalf("unexpected title %q", it.Title)
		}
	}
}

func TestDuplicateItemIDsKeepDuplicateRows(t *testing.T) {
	db := memdb(t)
	svc := newPointService(db)

	// "1,2,2" stores one association row per listed id, duplicate included
	created, err := svc.Create(springfieldPoint([]int64{1, 2, 2}))
	if err != nil {
		t.Fatal(err)
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM points_items WHERE point_id = ?`, created.ID); err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("want 3 association rows, got %d", n)
	}
}

func TestCreateRollsBackOnUnknownItem(t *testing.T) {
	db := memdb(t)
	svc := newPointService(db)

	// item 999 does not exist; the FK failure must undo the point insert too
	if _, err := svc.Create(springfieldPoint([]int64{1, 999})); err == nil {
		t.Fatal("expected foreign key failure")
	}

	var points, assocs int
	if err := db.Get(&points, `SELECT COUNT(*) FROM points`); err != nil {
		t.Fatal(err)
	}
	if err := db.Get(&assocs, `SELECT COUNT(*) FROM points_items`); err != nil {
		t.Fatal(err)
	}
	if points != 0 || assocs != 0 {
		t.Fatalf("partial create leaked: points=%d assocs=%d", points, assocs)
	}

	list, err := svc.Index("Springfield", "IL", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Fatalf("index sees rolled-back point: %+v", list)
	}
}

func TestIndexItemFilterDedupsPoints(t *testing.T) {
	db := memdb(t)
	svc := newPointService(db)

	p1, err := svc.Create(springfieldPoint([]int64{1, 3}))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(springfieldPoint([]int64{2})); err != nil {
		t.Fatal(err)
	}
	other := springfieldPoint([]int64{1})
	other.City = "Shelbyville"
	if _, err := svc.Create(other); err != nil {
		t.Fatal(err)
	}

	// p1 matches both requested items but must appear exactly once
	list, err := svc.Index("Springfield", "IL", []int64{1, 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != p1.ID {
		t.Fatalf("want only point %d once, got %+v", p1.ID, list)
	}
	if !strings.HasPrefix(list[0].ImageURL, testBaseURL+"/uploads/") {
		t.Fatalf("bad image_url: %s", list[0].ImageURL)
	}
}

func TestIndexWithoutItemFilter(t *testing.T) {
	db := memdb(t)
	svc := newPointService(db)

	if _, err := svc.Create(springfieldPoint([]int64{1, 3})); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(springfieldPoint([]int64{2})); err != nil {
		t.Fatal(err)
	}
	other := springfieldPoint([]int64{1})
	other.City = "Shelbyville"
	if _, err := svc.Create(other); err != nil {
		t.Fatal(err)
	}

	list, err := svc.Index("Springfield", "IL", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("want all 2 Springfield points, got %+v", list)
	}
}

func TestRecentPointsNewestFirst(t *testing.T) {
	db := memdb(t)
	svc := newPointService(db)

	first, err := svc.Create(springfieldPoint([]int64{1}))
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Create(springfieldPoint([]int64{2}))
	if err != nil {
		t.Fatal(err)
	}

	list, err := svc.Recent(8)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("want [%d %d], got %+v", second.ID, first.ID, list)
	}

	list, err = svc.Recent(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != second.ID {
		t.Fatalf("limit ignored: %+v", list)
	}
}

func TestShowUnknownPoint(t *testing.T) {
	db := memdb(t)
	svc := newPointService(db)

	if _, err := svc.Show(12345); !errors.Is(err, domain.ErrPointNotFound) {
		t.Fatalf("want ErrPointNotFound, got %v", err)
	}
}
