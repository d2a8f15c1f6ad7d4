package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/catalog"
	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/handlers/slogdiscard"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    models.Role
		wantErr bool
	}{
		{in: "designer", want: models.RoleDesigner},
		{in: " Developer ", want: models.RoleDeveloper},
		{in: "", want: models.DefaultRole},
		{in: "manager", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfileService_Profile(t *testing.T) {
	log := slogdiscard.NewDiscardLogger()
	cat, err := catalog.Default(log)
	require.NoError(t, err)

	svc := NewProfileService(log, cat)

	for _, role := range svc.Roles() {
		p, err := svc.Profile(context.Background(), role)
		require.NoError(t, err)
		assert.Equal(t, role, p.Role)
		assert.NotEmpty(t, p.Headline)
	}

	_, err = svc.Profile(context.Background(), "manager")
	assert.ErrorIs(t, err, ErrUnknownRole)
}
