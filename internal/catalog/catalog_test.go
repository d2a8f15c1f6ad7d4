package catalog

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/handlers/slogdiscard"
)

const validHeader = `
profiles:
  - role: designer
    name: Test
  - role: developer
    name: Test
categories:
  - name: video
    label: Video
    roles: [designer]
`

func discard() *slog.Logger {
	return slogdiscard.NewDiscardLogger()
}

func TestDefault(t *testing.T) {
	c, err := Default(discard())
	require.NoError(t, err)

	assert.NotEmpty(t, c.Items)
	for _, item := range c.Items {
		assert.NotEmpty(t, item.Thumbnail, item.ID)
		assert.NotNil(t, item.Assets, item.ID)
		assert.True(t, item.Type.Valid(), item.ID)
	}

	designer, ok := c.Profile(models.RoleDesigner)
	require.True(t, ok)
	assert.NotEmpty(t, designer.Skills)

	cat, ok := c.Category("ui-ux")
	require.True(t, ok)
	assert.True(t, cat.VisibleTo(models.RoleDeveloper))
	assert.True(t, cat.VisibleTo(models.RoleDesigner))
}

func TestLoad_SkipsItemsWithoutThumbnail(t *testing.T) {
	src := validHeader + `
items:
  - id: a
    title: A
    category: video
    type: video
    thumbnail: a.jpg
  - id: b
    title: B
    category: video
    type: video
`
	c, err := Load(discard(), strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, "a", c.Items[0].ID)
	assert.Equal(t, []string{}, c.Items[0].Assets)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{
			name: "duplicate id",
			src: validHeader + `
items:
  - {id: a, title: A, category: video, type: video, thumbnail: a.jpg}
  - {id: a, title: B, category: video, type: video, thumbnail: b.jpg}
`,
			wantErr: ErrDuplicateItem,
		},
		{
			name: "unknown type",
			src: validHeader + `
items:
  - {id: a, title: A, category: video, type: hologram, thumbnail: a.jpg}
`,
			wantErr: ErrUnknownType,
		},
		{
			name: "unknown category",
			src: validHeader + `
items:
  - {id: a, title: A, category: sculpture, type: image, thumbnail: a.jpg}
`,
			wantErr: ErrUnknownCategory,
		},
		{
			name: "missing developer profile",
			src: `
profiles:
  - role: designer
    name: Test
categories: []
items: []
`,
			wantErr: ErrMissingProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(discard(), strings.NewReader(tt.src))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadFile_EmptyPathUsesEmbedded(t *testing.T) {
	c, err := LoadFile(discard(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, c.Items)
}
