package screens

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/rashidrk201111/badshahpizzahub/entity"
	"github.com/rashidrk201111/badshahpizzahub/services"
	"golang.org/x/sync/errgroup"
)

type FormKind string

const (
	FormNone     FormKind = ""
	FormCategory FormKind = "category"
	FormItem     FormKind = "item"
	FormBill     FormKind = "bill"
)

const (
	msgSaveFailed   = "Something went wrong while saving. Please try again."
	msgDeleteFailed = "Something went wrong while deleting. Please try again."
)

// MenuScreen manages categories and items. Every successful mutation is
// followed by a full reload of both lists.
type MenuScreen struct {
	mu      sync.Mutex
	backend MenuBackend
	userID  uint
	stale   atomic.Bool

	categories []entity.MenuCategory
	items      []entity.MenuItem
	expanded   map[uint]bool

	form         FormKind
	categoryForm services.CategoryForm
	itemForm     services.ItemForm
}

func NewMenuScreen(backend MenuBackend, userID uint) *MenuScreen {
	s := &MenuScreen{backend: backend, userID: userID, expanded: map[uint]bool{}}
	s.stale.Store(true)
	return s
}

// Load fetches categories and items together. A failure is logged and
// leaves both lists empty.
func (s *MenuScreen) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)
}

func (s *MenuScreen) load(ctx context.Context) {
	s.stale.Store(false)

	var cats []entity.MenuCategory
	var items []entity.MenuItem
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cats, err = s.backend.ListCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.backend.ListItems(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("menu screen: load failed: %v", err)
		cats, items = nil, nil
	}
	s.categories, s.items = cats, items
}

// Invalidate marks the lists out of date; the next Refresh reloads them.
func (s *MenuScreen) Invalidate() { s.stale.Store(true) }

// Refresh reloads only when the lists are out of date.
func (s *MenuScreen) Refresh(ctx context.Context) {
	if !s.stale.Load() {
		return
	}
	s.Load(ctx)
}

// ToggleCategory expands or collapses a category. Local only.
func (s *MenuScreen) ToggleCategory(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expanded[id] {
		delete(s.expanded, id)
		return false
	}
	s.expanded[id] = true
	return true
}

// ----- Category form -----

// OpenCategoryForm opens a blank form for id 0, otherwise one pre-filled
// from the loaded category.
func (s *MenuScreen) OpenCategoryForm(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := services.NewCategoryForm()
	if id != 0 {
		c, ok := s.findCategory(id)
		if !ok {
			return fmt.Errorf("category %d: %w", id, services.ErrNotFound)
		}
		f = services.CategoryFormFrom(c)
	}
	s.form, s.categoryForm = FormCategory, f
	return nil
}

func (s *MenuScreen) EditCategoryForm(edit func(*services.CategoryForm)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form != FormCategory {
		return ErrNoForm
	}
	id := s.categoryForm.ID
	edit(&s.categoryForm)
	s.categoryForm.ID = id
	return nil
}

// SubmitCategory saves the open form, closes it and reloads. On failure the
// form stays open and the user gets a generic alert.
func (s *MenuScreen) SubmitCategory(ctx context.Context, p Prompter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form != FormCategory {
		return ErrNoForm
	}
	if _, err := s.backend.SaveCategory(ctx, s.userID, s.categoryForm); err != nil {
		log.Printf("menu screen: save category: %v", err)
		p.Alert(msgSaveFailed)
		return err
	}
	s.closeForm()
	s.load(ctx)
	return nil
}

// ----- Item form -----

// OpenItemForm opens a blank form for id 0 (defaulting to the first
// category), otherwise one pre-filled from the loaded item.
func (s *MenuScreen) OpenItemForm(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f services.ItemForm
	if id == 0 {
		var catID uint
		if len(s.categories) > 0 {
			catID = s.categories[0].ID
		}
		f = services.NewItemForm(catID)
	} else {
		it, ok := s.findItem(id)
		if !ok {
			return fmt.Errorf("menu item %d: %w", id, services.ErrNotFound)
		}
		f = services.ItemFormFrom(it)
	}
	s.form, s.itemForm = FormItem, f
	return nil
}

func (s *MenuScreen) EditItemForm(edit func(*services.ItemForm)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form != FormItem {
		return ErrNoForm
	}
	id := s.itemForm.ID
	edit(&s.itemForm)
	s.itemForm.ID = id
	return nil
}

func (s *MenuScreen) SubmitItem(ctx context.Context, p Prompter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form != FormItem {
		return ErrNoForm
	}
	if _, err := s.backend.SaveItem(ctx, s.userID, s.itemForm); err != nil {
		log.Printf("menu screen: save item: %v", err)
		p.Alert(msgSaveFailed)
		return err
	}
	s.closeForm()
	s.load(ctx)
	return nil
}

// CancelForm discards any unsaved edits.
func (s *MenuScreen) CancelForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeForm()
}

func (s *MenuScreen) closeForm() {
	s.form = FormNone
	s.categoryForm = services.CategoryForm{}
	s.itemForm = services.ItemForm{}
}

// ----- Delete -----

// DeleteCategory asks for confirmation, deletes and reloads. Items of the
// category are handled by the backend's delete policy.
func (s *MenuScreen) DeleteCategory(ctx context.Context, id uint, p Prompter) error {
	if !p.Confirm("Are you sure you want to delete this category?") {
		return ErrNotConfirmed
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.DeleteCategory(ctx, id); err != nil {
		log.Printf("menu screen: delete category %d: %v", id, err)
		p.Alert(msgDeleteFailed)
		return err
	}
	delete(s.expanded, id)
	s.load(ctx)
	return nil
}

func (s *MenuScreen) DeleteItem(ctx context.Context, id uint, p Prompter) error {
	if !p.Confirm("Are you sure you want to delete this item?") {
		return ErrNotConfirmed
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.DeleteItem(ctx, id); err != nil {
		log.Printf("menu screen: delete item %d: %v", id, err)
		p.Alert(msgDeleteFailed)
		return err
	}
	s.load(ctx)
	return nil
}

// ----- View -----

type CategoryView struct {
	entity.MenuCategory
	Expanded bool              `json:"expanded"`
	Items    []entity.MenuItem `json:"items"`
}

type MenuView struct {
	Categories []CategoryView `json:"categories"`
	// items whose category is no longer listed
	Uncategorized []entity.MenuItem      `json:"uncategorized"`
	Form          FormKind               `json:"form"`
	CategoryForm  *services.CategoryForm `json:"categoryForm,omitempty"`
	ItemForm      *services.ItemForm     `json:"itemForm,omitempty"`
}

// View groups the loaded items under their categories, keeping both
// display orders.
func (s *MenuScreen) View() MenuView {
	s.mu.Lock()
	defer s.mu.Unlock()

	byCat := make(map[uint][]entity.MenuItem, len(s.categories))
	known := make(map[uint]bool, len(s.categories))
	for _, c := range s.categories {
		known[c.ID] = true
	}
	v := MenuView{
		Categories:    make([]CategoryView, 0, len(s.categories)),
		Uncategorized: []entity.MenuItem{},
		Form:          s.form,
	}
	for _, it := range s.items {
		if known[it.CategoryID] {
			byCat[it.CategoryID] = append(byCat[it.CategoryID], it)
		} else {
			v.Uncategorized = append(v.Uncategorized, it)
		}
	}
	for _, c := range s.categories {
		items := byCat[c.ID]
		if items == nil {
			items = []entity.MenuItem{}
		}
		v.Categories = append(v.Categories, CategoryView{MenuCategory: c, Expanded: s.expanded[c.ID], Items: items})
	}

	switch s.form {
	case FormCategory:
		f := s.categoryForm
		v.CategoryForm = &f
	case FormItem:
		f := s.itemForm
		v.ItemForm = &f
	}
	return v
}

func (s *MenuScreen) findCategory(id uint) (entity.MenuCategory, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return entity.MenuCategory{}, false
}

func (s *MenuScreen) findItem(id uint) (entity.MenuItem, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return entity.MenuItem{}, false
}
