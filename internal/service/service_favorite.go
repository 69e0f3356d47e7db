package service

import (
	"context"
	"fmt"

	"github.com/msavelyeva/nutrikeep/internal/store"
)

type favoriteService struct {
	favorites store.FavoriteRepository
}

func NewFavoriteService(storages *store.Storages) FavoriteService {
	return &favoriteService{favorites: storages.FavoriteRepository}
}

// Toggle implements FavoriteService.
func (s *favoriteService) Toggle(ctx context.Context, code string) (bool, error) {
	favorited, err := s.favorites.Is(ctx, code)
	if err != nil {
		return false, fmt.Errorf("check favorite state: %w", err)
	}

	if favorited {
		if err = s.favorites.Remove(ctx, code); err != nil {
			return true, fmt.Errorf("remove favorite: %w", err)
		}
		return false, nil
	}

	if err = s.favorites.Add(ctx, code); err != nil {
		return false, fmt.Errorf("add favorite: %w", err)
	}
	return true, nil
}

func (s *favoriteService) IsFavorite(ctx context.Context, code string) (bool, error) {
	favorited, err := s.favorites.Is(ctx, code)
	if err != nil {
		return false, fmt.Errorf("check favorite state: %w", err)
	}
	return favorited, nil
}

func (s *favoriteService) GetFavorites(ctx context.Context) ([]string, error) {
	codes, err := s.favorites.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return codes, nil
}
