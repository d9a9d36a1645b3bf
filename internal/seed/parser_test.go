package seed

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pricetrail/pricetrail/internal/domain/models"
)

// fakeRepo is shared by concurrent import workers, so it locks around state.
type fakeRepo struct {
	mu       sync.Mutex
	batches  [][]models.Product
	err      error
	imported map[string]bool
	deleted  []string
	logged   map[string]int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{imported: map[string]bool{}, logged: map[string]int{}}
}

func (f *fakeRepo) Insert(models.Product) error { return nil }
func (f *fakeRepo) InsertBatch(products []models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, append([]models.Product(nil), products...))
	return f.err
}
func (f *fakeRepo) GetByID(string) (*models.Product, error)      { return nil, nil }
func (f *fakeRepo) GetByArticle(string) (*models.Product, error) { return nil, nil }
func (f *fakeRepo) List() ([]models.Product, error)              { return nil, nil }
func (f *fakeRepo) HasImportForFile(name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.imported[name], nil
}
func (f *fakeRepo) UpsertImportLog(name string, n int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logged[name] = n
	return nil
}
func (f *fakeRepo) DeleteBySourceFile(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, name)
	return nil
}

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return p
}

const validHeader = "article;name;price;description\n"

func TestParseAndPersistFile_TableDriven(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name        string
		content     string
		wantErr     bool
		wantBatches int
		wantRows    int
	}{
		{name: "ok single row", content: validHeader + "SKU-1;Grinder;100.00;burr grinder\n", wantBatches: 1, wantRows: 1},
		{name: "comma decimal tolerated", content: validHeader + "SKU-1;Grinder;99,90;\n", wantBatches: 1, wantRows: 1},
		{name: "empty description tolerated", content: validHeader + "SKU-1;Grinder;100;\n", wantBatches: 1, wantRows: 1},
		{name: "bad header order", content: "name;article;price;description\nGrinder;SKU-1;100;\n", wantErr: true},
		{name: "bad col count", content: validHeader + "a;b\n", wantErr: true},
		{name: "empty article", content: validHeader + ";Grinder;100;\n", wantErr: true},
		{name: "empty price", content: validHeader + "SKU-1;Grinder;;\n", wantErr: true},
		{name: "invalid price", content: validHeader + "SKU-1;Grinder;abc;\n", wantErr: true},
		{name: "negative price", content: validHeader + "SKU-1;Grinder;-5;\n", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempFile(t, dir, "catalog.csv", tc.content)
			repo := newFakeRepo()
			n, err := parseAndPersistFile(context.Background(), path, repo, 5)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if n != tc.wantRows {
				t.Fatalf("rows: want %d got %d", tc.wantRows, n)
			}
			if len(repo.batches) != tc.wantBatches {
				t.Fatalf("batches: want %d got %d", tc.wantBatches, len(repo.batches))
			}
		})
	}
}

func TestParseAndPersistFile_AssignsIDAndSource(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "catalog.csv", validHeader+"SKU-1;Grinder;100;\n")

	repo := newFakeRepo()
	if _, err := parseAndPersistFile(context.Background(), path, repo, 5); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	p := repo.batches[0][0]
	if p.ID == "" {
		t.Fatalf("expected generated product id")
	}
	if p.SourceFile != "catalog.csv" {
		t.Fatalf("source file: got %q", p.SourceFile)
	}
}

func TestParseAndPersistFile_Batching(t *testing.T) {
	dir := t.TempDir()
	content := validHeader
	for i := 0; i < 7; i++ {
		content += "SKU-" + string(rune('A'+i)) + ";Item;10;\n"
	}
	path := writeTempFile(t, dir, "catalog.csv", content)

	repo := newFakeRepo()
	n, err := parseAndPersistFile(context.Background(), path, repo, 3)
	if err != nil || n != 7 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	// 3 + 3 + 1
	if len(repo.batches) != 3 || len(repo.batches[2]) != 1 {
		t.Fatalf("unexpected batch shape: %d batches", len(repo.batches))
	}
}

func TestParseAndPersistFile_ContextCanceled(t *testing.T) {
	dir := t.TempDir()
	content := validHeader
	for i := 0; i < 1000; i++ {
		content += "SKU-1;Grinder;100;\n"
	}
	path := writeTempFile(t, dir, "big.csv", content)

	repo := newFakeRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediately canceled
	if _, err := parseAndPersistFile(ctx, path, repo, 100); err == nil {
		t.Fatalf("expected context canceled error")
	}
}
