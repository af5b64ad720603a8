package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catalogo-3d/models"
	"catalogo-3d/pricing"
)

// fakeDesignRepo implements repository.DesignRepositoryInterface in memory,
// mirroring the repository contract (validation, image replace semantics).
type fakeDesignRepo struct {
	designs    map[int64]*models.Design
	nextID     int64
	failWith   error
	lastImages []string
}

func newFakeDesignRepo() *fakeDesignRepo {
	return &fakeDesignRepo{designs: make(map[int64]*models.Design), nextID: 1}
}

func (f *fakeDesignRepo) ListAll(ctx context.Context) ([]models.Design, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	list := []models.Design{}
	for _, d := range f.designs {
		list = append(list, *d)
	}
	return list, nil
}

func (f *fakeDesignRepo) GetByID(ctx context.Context, id int64) (*models.Design, error) {
	d, ok := f.designs[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return d, nil
}

func (f *fakeDesignRepo) Create(ctx context.Context, req *models.DesignRequest) (*models.Design, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if f.failWith != nil {
		return nil, f.failWith
	}
	d := &models.Design{
		ID:          f.nextID,
		Title:       req.Title,
		Description: req.Description,
		Price:       pricing.RoundPrice(req.Price),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		Images:      []models.DesignImage{},
	}
	for i, url := range req.Images {
		d.Images = append(d.Images, models.DesignImage{DesignID: d.ID, ImageURL: url, DisplayOrder: i})
	}
	f.designs[d.ID] = d
	f.nextID++
	f.lastImages = req.Images
	return d, nil
}

func (f *fakeDesignRepo) Update(ctx context.Context, id int64, req *models.DesignRequest) (*models.Design, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	d, ok := f.designs[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	d.Title = req.Title
	d.Description = req.Description
	d.Price = pricing.RoundPrice(req.Price)
	d.UpdatedAt = time.Now()
	if len(req.Images) > 0 {
		d.Images = []models.DesignImage{}
		for i, url := range req.Images {
			d.Images = append(d.Images, models.DesignImage{DesignID: id, ImageURL: url, DisplayOrder: i})
		}
	}
	f.lastImages = req.Images
	return d, nil
}

func (f *fakeDesignRepo) Delete(ctx context.Context, id int64) error {
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.designs, id)
	return nil
}

func (f *fakeDesignRepo) ApplyPercentage(ctx context.Context, percent float64) (int, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	for _, d := range f.designs {
		d.Price = pricing.AdjustPrice(d.Price, percent)
	}
	return len(f.designs), nil
}

func TestDesignCreate(t *testing.T) {
	repo := newFakeDesignRepo()
	c := NewDesignController(repo)

	body := `{"title":"Maceta","description":"Maceta hexagonal","price":100.5,"images":["https://x/a.png","https://x/b.png"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/designs", strings.NewReader(body))
	w := httptest.NewRecorder()
	c.Create(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Create status = %d, want 201, body: %s", w.Code, w.Body.String())
	}

	var got models.Design
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Price != 101 {
		t.Errorf("created price = %d, want 101 (100.5 rounds half away from zero)", got.Price)
	}
	if len(got.Images) != 2 || got.Images[0].DisplayOrder != 0 || got.Images[1].DisplayOrder != 1 {
		t.Errorf("created images = %+v, want display_order 0,1 in input order", got.Images)
	}
}

func TestDesignCreateValidation(t *testing.T) {
	repo := newFakeDesignRepo()
	c := NewDesignController(repo)

	tests := []string{
		`{"title":"","description":"d","price":100}`,
		`{"title":"t","description":"","price":100}`,
		`{"title":"t","description":"d","price":0}`,
		`{"title":"t","description":"d","price":-10}`,
		`{"title":"t","description":"d","price":100,"unknown":"field"}`,
		`not json`,
	}
	for _, body := range tests {
		req := httptest.NewRequest(http.MethodPost, "/api/designs", strings.NewReader(body))
		w := httptest.NewRecorder()
		c.Create(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Create(%s) status = %d, want 400", body, w.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp["error"] == "" {
			t.Errorf("Create(%s) body = %s, want {\"error\": ...}", body, w.Body.String())
		}
	}
}

func TestDesignGetByIDNotFound(t *testing.T) {
	c := NewDesignController(newFakeDesignRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/designs/42", nil)
	w := httptest.NewRecorder()
	c.GetByID(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("GetByID status = %d, want 404", w.Code)
	}
}

func TestDesignGetByIDInvalidID(t *testing.T) {
	c := NewDesignController(newFakeDesignRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/designs/not-a-number", nil)
	w := httptest.NewRecorder()
	c.GetByID(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("GetByID status = %d, want 400", w.Code)
	}
}

func TestDesignUpdateReplacesImages(t *testing.T) {
	repo := newFakeDesignRepo()
	c := NewDesignController(repo)

	created, _ := repo.Create(context.Background(), &models.DesignRequest{
		Title: "t", Description: "d", Price: 100,
		Images: []string{"https://x/old1.png", "https://x/old2.png", "https://x/old3.png"},
	})

	body := `{"title":"t","description":"d","price":100,"images":["https://x/new2.png","https://x/new1.png"]}`
	req := httptest.NewRequest(http.MethodPut, "/api/designs/1", strings.NewReader(body))
	w := httptest.NewRecorder()
	c.Update(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Update status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	d := repo.designs[created.ID]
	if len(d.Images) != 2 {
		t.Fatalf("images after update = %d, want 2 (full replace)", len(d.Images))
	}
	// Renumbered 0..N-1 in input order, old display_order values discarded
	if d.Images[0].ImageURL != "https://x/new2.png" || d.Images[0].DisplayOrder != 0 {
		t.Errorf("first image = %+v, want new2.png at display_order 0", d.Images[0])
	}
	if d.Images[1].ImageURL != "https://x/new1.png" || d.Images[1].DisplayOrder != 1 {
		t.Errorf("second image = %+v, want new1.png at display_order 1", d.Images[1])
	}
}

func TestDesignUpdateWithoutImagesKeepsExisting(t *testing.T) {
	repo := newFakeDesignRepo()
	c := NewDesignController(repo)

	created, _ := repo.Create(context.Background(), &models.DesignRequest{
		Title: "t", Description: "d", Price: 100,
		Images: []string{"https://x/a.png"},
	})

	body := `{"title":"renamed","description":"d","price":200}`
	req := httptest.NewRequest(http.MethodPut, "/api/designs/1", strings.NewReader(body))
	w := httptest.NewRecorder()
	c.Update(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Update status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	d := repo.designs[created.ID]
	if len(d.Images) != 1 || d.Images[0].ImageURL != "https://x/a.png" {
		t.Errorf("images after update without payload = %+v, want untouched original", d.Images)
	}
	if d.Title != "renamed" || d.Price != 200 {
		t.Errorf("design fields after update = %q/%d, want renamed/200", d.Title, d.Price)
	}
}

func TestDesignDelete(t *testing.T) {
	repo := newFakeDesignRepo()
	c := NewDesignController(repo)
	repo.Create(context.Background(), &models.DesignRequest{Title: "t", Description: "d", Price: 100})

	req := httptest.NewRequest(http.MethodDelete, "/api/designs/1", nil)
	w := httptest.NewRecorder()
	c.Delete(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Delete status = %d, want 200", w.Code)
	}
	var resp map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || !resp["success"] {
		t.Errorf("Delete body = %s, want {\"success\":true}", w.Body.String())
	}
	if len(repo.designs) != 0 {
		t.Error("design still present after delete")
	}
}

func TestApplyPercentage(t *testing.T) {
	repo := newFakeDesignRepo()
	c := NewDesignController(repo)
	repo.Create(context.Background(), &models.DesignRequest{Title: "t", Description: "d", Price: 1000})

	req := httptest.NewRequest(http.MethodPost, "/api/designs/percentage", strings.NewReader(`{"percentage":10}`))
	w := httptest.NewRecorder()
	c.ApplyPercentage(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("ApplyPercentage status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success      bool `json:"success"`
		UpdatedCount int  `json:"updatedCount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.UpdatedCount != 1 {
		t.Errorf("response = %+v, want success with updatedCount 1", resp)
	}
	if repo.designs[1].Price != 1100 {
		t.Errorf("price after 10%% = %d, want 1100", repo.designs[1].Price)
	}
}

func TestApplyPercentageRejectsNonNumeric(t *testing.T) {
	c := NewDesignController(newFakeDesignRepo())

	for _, body := range []string{`{"percentage":"abc"}`, `{}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/designs/percentage", strings.NewReader(body))
		w := httptest.NewRecorder()
		c.ApplyPercentage(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("ApplyPercentage(%s) status = %d, want 400", body, w.Code)
		}
	}
}

func TestApplyPercentageBackendFailure(t *testing.T) {
	repo := newFakeDesignRepo()
	repo.failWith = errors.New("store unavailable")
	c := NewDesignController(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/designs/percentage", strings.NewReader(`{"percentage":5}`))
	w := httptest.NewRecorder()
	c.ApplyPercentage(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("ApplyPercentage status = %d, want 500", w.Code)
	}
}
