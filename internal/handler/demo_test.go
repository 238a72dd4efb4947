package handler

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"

	"github.com/jaiganesh5555/arcade/internal/middleware"
	"github.com/jaiganesh5555/arcade/internal/repository"
	"github.com/jaiganesh5555/arcade/internal/service"
)

var demoCols = []string{
	"id", "user_id", "title", "description", "demo_type", "content",
	"thumbnail", "source_url", "is_public", "views", "created_at", "updated_at",
}

// newDemoRouter mounts the demo routes behind a stub identity middleware so
// chi URL params resolve the same way they do in cmd/api.
func newDemoRouter(t *testing.T, userID int64) (chi.Router, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	h := NewDemoHandler(service.NewDemoService(repository.NewDemoRepository(db)))

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middleware.WithUserID(req.Context(), userID)))
		})
	})
	r.Post("/api/demos", h.HandleCreate)
	r.Get("/api/demos", h.HandleList)
	r.Get("/api/demos/{id}", h.HandleGet)
	r.Put("/api/demos/{id}", h.HandleUpdate)
	r.Delete("/api/demos/{id}", h.HandleDelete)

	return r, mock
}

func TestHandleCreateDemo(t *testing.T) {
	r, mock := newDemoRouter(t, 1)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO demos`)).
		WillReturnResult(sqlmock.NewResult(5, 1))

	req := httptest.NewRequest(http.MethodPost, "/api/demos",
		strings.NewReader(`{"title":"Raymarcher","description":"d","type":"webgl","content":"<canvas>"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusCreated, rec.Body)
	}

	body := decodeBody(t, rec)
	if body["id"] != float64(5) {
		t.Errorf("created id = %v, want 5", body["id"])
	}
	if body["views"] != float64(0) {
		t.Errorf("created views = %v, want 0", body["views"])
	}
}

func TestHandleCreateDemoValidation(t *testing.T) {
	r, _ := newDemoRouter(t, 1)

	req := httptest.NewRequest(http.MethodPost, "/api/demos",
		strings.NewReader(`{"title":"","description":"d","type":"webgl","content":"c"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleGetDemo(t *testing.T) {
	r, mock := newDemoRouter(t, 1)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM demos WHERE id = ? AND user_id = ?`)).
		WithArgs(int64(5), int64(1)).
		WillReturnRows(sqlmock.NewRows(demoCols).
			AddRow(5, 1, "Raymarcher", "d", "webgl", "<canvas>", "", "", false, 41, now, now))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE demos SET views = views + 1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodGet, "/api/demos/5", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusOK, rec.Body)
	}
	if views := decodeBody(t, rec)["views"]; views != float64(41) {
		t.Errorf("views = %v, want pre-increment 41", views)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations (view increment must run): %v", err)
	}
}

func TestHandleGetDemoNotOwned(t *testing.T) {
	r, mock := newDemoRouter(t, 2)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM demos WHERE id = ? AND user_id = ?`)).
		WithArgs(int64(5), int64(2)).
		WillReturnRows(sqlmock.NewRows(demoCols))

	req := httptest.NewRequest(http.MethodGet, "/api/demos/5", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleGetDemoBadID(t *testing.T) {
	r, _ := newDemoRouter(t, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/demos/abc", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleUpdateDemoNotOwned(t *testing.T) {
	r, mock := newDemoRouter(t, 2)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM demos WHERE id = ? AND user_id = ?`)).
		WillReturnRows(sqlmock.NewRows(demoCols))

	req := httptest.NewRequest(http.MethodPut, "/api/demos/5",
		strings.NewReader(`{"title":"T","description":"d","type":"webgl","content":"c"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleDeleteDemo(t *testing.T) {
	r, mock := newDemoRouter(t, 1)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM demos`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodDelete, "/api/demos/5", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if msg, _ := decodeBody(t, rec)["message"].(string); msg == "" {
		t.Error("delete response missing confirmation message")
	}
}

func TestHandleListDemos(t *testing.T) {
	r, mock := newDemoRouter(t, 1)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM demos WHERE user_id = ?`)).
		WillReturnRows(sqlmock.NewRows(demoCols).
			AddRow(2, 1, "Newer", "d", "webgl", "c", "", "", true, 0, now, now).
			AddRow(1, 1, "Older", "d", "canvas", "c", "", "", false, 9, now.Add(-time.Hour), now.Add(-time.Hour)))

	req := httptest.NewRequest(http.MethodGet, "/api/demos", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); !strings.Contains(body, "Newer") || !strings.Contains(body, "Older") {
		t.Errorf("list body missing demos: %s", body)
	}
}
