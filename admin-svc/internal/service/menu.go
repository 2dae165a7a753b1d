package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"coffeehouse-pos/admin-svc/internal/domain"
	"coffeehouse-pos/admin-svc/internal/eventbus"
)

var (
	ErrInvalidCategory = errors.New("category is not part of the menu")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrImageTooLarge   = errors.New("embedded image exceeds the size limit")
)

type MenuService struct {
	repo MenuRepository
	bus  EventPublisher
}

func NewMenuService(repo MenuRepository, bus EventPublisher) *MenuService {
	return &MenuService{repo: repo, bus: bus}
}

func (s *MenuService) List() ([]domain.MenuItem, error) {
	return s.repo.ListMenu()
}

// Add assigns a creation-time id and broadcasts MENU_UPDATE. The event has
// no payload; consumers re-fetch the whole menu.
func (s *MenuService) Add(ctx context.Context, item *domain.MenuItem) error {
	if err := validateMenuItem(*item); err != nil {
		return err
	}
	item.ID = time.Now().UnixMilli()
	if err := s.repo.InsertMenuItem(item); err != nil {
		return fmt.Errorf("failed to save menu item: %w", err)
	}
	s.broadcast(ctx)
	return nil
}

// Update replaces the stored item wholesale. An unknown id is a silent
// no-op and does not broadcast.
func (s *MenuService) Update(ctx context.Context, item domain.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	changed, err := s.repo.UpdateMenuItem(item)
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	if changed {
		s.broadcast(ctx)
	}
	return nil
}

// Delete is idempotent: deleting an absent id succeeds without an event.
func (s *MenuService) Delete(ctx context.Context, id int64) error {
	changed, err := s.repo.DeleteMenuItem(id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if changed {
		s.broadcast(ctx)
	}
	return nil
}

func (s *MenuService) broadcast(ctx context.Context) {
	if err := s.bus.Publish(ctx, eventbus.EventMenuUpdate, nil); err != nil {
		log.Printf("menu: MENU_UPDATE broadcast failed: %v", err)
	}
}

func validateMenuItem(item domain.MenuItem) error {
	if item.Name == "" {
		return errors.New("name is required")
	}
	if !domain.ValidCategory(item.Category) {
		return ErrInvalidCategory
	}
	if item.Price < 0 {
		return ErrNegativePrice
	}
	if len(item.Image) > domain.MaxImageBytes {
		return ErrImageTooLarge
	}
	return nil
}
