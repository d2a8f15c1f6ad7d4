package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"portfolio/internal/catalog"
	"portfolio/internal/domain/models"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole accepts a role name in any case. An empty string yields the
// default role.
func ParseRole(s string) (models.Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return models.DefaultRole, nil
	}
	role := models.Role(s)
	if !role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return role, nil
}

type ProfileService struct {
	log     *slog.Logger
	catalog *catalog.Catalog
}

func NewProfileService(log *slog.Logger, cat *catalog.Catalog) *ProfileService {
	return &ProfileService{log: log, catalog: cat}
}

func (s *ProfileService) Profile(_ context.Context, role models.Role) (models.Profile, error) {
	const op = "service.ProfileService.Profile"

	if !role.Valid() {
		return models.Profile{}, fmt.Errorf("%s: %w: %q", op, ErrUnknownRole, role)
	}

	p, ok := s.catalog.Profile(role)
	if !ok {
		s.log.Error("profile missing from catalog", slog.String("op", op), slog.String("role", string(role)))
		return models.Profile{}, fmt.Errorf("%s: %w: %q", op, ErrUnknownRole, role)
	}
	return p, nil
}

// Roles lists the personas in display order.
func (s *ProfileService) Roles() []models.Role {
	return []models.Role{models.RoleDesigner, models.RoleDeveloper}
}
